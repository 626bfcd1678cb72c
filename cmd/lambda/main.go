//go:build lambda

// Command lambda serves the MixMaster API from an AWS Lambda Function URL.
// Build with: go build -tags lambda ./cmd/lambda
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/osse101/MixMaster_Go/internal/bootstrap"
	"github.com/osse101/MixMaster_Go/internal/config"
	"github.com/osse101/MixMaster_Go/internal/lambdaurl"
	"github.com/osse101/MixMaster_Go/internal/logger"
	"github.com/osse101/MixMaster_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Lambda captures stdout; no session log file
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	svcs, err := bootstrap.InitializeServices(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(server.Options{
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RequestTimeout: cfg.RequestTimeout,
	}, svcs.Mix, svcs.Optimizer, svcs)

	lambda.Start(lambdaurl.Wrap(router))
}
