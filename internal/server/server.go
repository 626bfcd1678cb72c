package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/MixMaster_Go/docs" // swagger docs
	"github.com/osse101/MixMaster_Go/internal/handler"
	"github.com/osse101/MixMaster_Go/internal/metrics"
	"github.com/osse101/MixMaster_Go/internal/mix"
	"github.com/osse101/MixMaster_Go/internal/optimizer"
)

// Options configures the HTTP API
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

func (o Options) withDefaults() Options {
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = DefaultRequestTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return o
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates the HTTP API server
func NewServer(opts Options, mixService mix.Service, optimizerService optimizer.Service, ready handler.ReadinessChecker) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, mixService, optimizerService, ready),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. It is shared by the HTTP server and the
// Lambda entrypoint.
func NewRouter(opts Options, mixService mix.Service, optimizerService optimizer.Service, ready handler.ReadinessChecker) chi.Router {
	opts = opts.withDefaults()
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(ready))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Optimizer calls can be long; the context deadline stops the search
		r.Use(middleware.Timeout(opts.RequestTimeout))

		r.Get("/products", handler.HandleListProducts(mixService))
		r.Get("/products/{id}", handler.HandleGetProduct(mixService))
		r.Get("/ingredients", handler.HandleListIngredients(mixService))
		r.Get("/ingredients/{id}", handler.HandleGetIngredient(mixService))
		r.Get("/effects/{name}", handler.HandleGetEffect(mixService))

		r.Route("/mix", func(r chi.Router) {
			r.Post("/calculate", handler.HandleCalculateMix(mixService))
			r.Get("/link", handler.HandleDecodeMixLink(mixService))
			r.Post("/name", handler.HandleGenerateName(mixService))
			r.Post("/suggestions", handler.HandleSuggestions(mixService))
			r.Post("/can-add", handler.HandleCanAdd(mixService))
			r.Post("/reverse", handler.HandleReverseLookup(mixService))
		})

		r.Route("/optimizer", func(r chi.Router) {
			r.Post("/optimize", handler.HandleOptimize(optimizerService))
			r.Get("/goals", handler.HandleListGoals(optimizerService))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
