package lambdaurl

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func functionURLEvent(method, path, query, body string) events.LambdaFunctionURLRequest {
	return events.LambdaFunctionURLRequest{
		RawPath:        path,
		RawQueryString: query,
		Body:           body,
		Headers:        map[string]string{"content-type": "application/json", "x-api-key": "secret"},
		RequestContext: events.LambdaFunctionURLRequestContext{
			DomainName: "abc.lambda-url.eu-west-1.on.aws",
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{
				Method:   method,
				SourceIP: "203.0.113.7",
			},
		},
	}
}

func TestNewRequest(t *testing.T) {
	t.Run("plain body", func(t *testing.T) {
		event := functionURLEvent(http.MethodPost, "/api/v1/mix/calculate", "debug=1", `{"base_product_id":"og-kush"}`)

		req, err := NewRequest(context.Background(), event)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/v1/mix/calculate", req.URL.Path)
		assert.Equal(t, "1", req.URL.Query().Get("debug"))
		assert.Equal(t, "secret", req.Header.Get("X-API-Key"))
		assert.Equal(t, "203.0.113.7:0", req.RemoteAddr)
		assert.Equal(t, "abc.lambda-url.eu-west-1.on.aws", req.Host)

		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"base_product_id":"og-kush"}`, string(body))
	})

	t.Run("base64 body", func(t *testing.T) {
		event := functionURLEvent(http.MethodPost, "/x", "", base64.StdEncoding.EncodeToString([]byte("hello")))
		event.IsBase64Encoded = true

		req, err := NewRequest(context.Background(), event)

		require.NoError(t, err)
		body, _ := io.ReadAll(req.Body)
		assert.Equal(t, "hello", string(body))
	})

	t.Run("bad base64", func(t *testing.T) {
		event := functionURLEvent(http.MethodPost, "/x", "", "%%%")
		event.IsBase64Encoded = true

		_, err := NewRequest(context.Background(), event)

		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		req, err := NewRequest(context.Background(), events.LambdaFunctionURLRequest{})

		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/", req.URL.Path)
	})
}

func TestWrap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.SetCookie(w, &http.Cookie{Name: "seen", Value: "1"})
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("GET /binary", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0xff, 0xfe, 0x00})
	})
	handler := Wrap(mux)

	t.Run("json", func(t *testing.T) {
		resp, err := handler(context.Background(), functionURLEvent(http.MethodGet, "/healthz", "", ""))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
		assert.Equal(t, []string{"seen=1"}, resp.Cookies)
		assert.False(t, resp.IsBase64Encoded)
		assert.JSONEq(t, `{"status":"ok"}`, resp.Body)
	})

	t.Run("binary", func(t *testing.T) {
		resp, err := handler(context.Background(), functionURLEvent(http.MethodGet, "/binary", "", ""))

		require.NoError(t, err)
		assert.True(t, resp.IsBase64Encoded)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0x00}), resp.Body)
	})

	t.Run("not found passes through", func(t *testing.T) {
		resp, err := handler(context.Background(), functionURLEvent(http.MethodGet, "/nope", "", ""))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed event", func(t *testing.T) {
		event := functionURLEvent(http.MethodPost, "/healthz", "", "%%%")
		event.IsBase64Encoded = true

		resp, err := handler(context.Background(), event)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
