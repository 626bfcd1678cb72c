// Package lambdaurl serves an http.Handler behind an AWS Lambda Function URL.
package lambdaurl

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// HandlerFunc is the signature lambda.Start expects for Function URL events
type HandlerFunc func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error)

// Wrap adapts h. Malformed events get a 400 rather than a Lambda error so the
// caller sees a normal HTTP response.
func Wrap(h http.Handler) HandlerFunc {
	return func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		req, err := NewRequest(ctx, event)
		if err != nil {
			return events.LambdaFunctionURLResponse{
				StatusCode: http.StatusBadRequest,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       `{"error":"invalid request"}`,
			}, nil
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return NewResponse(rec.Result())
	}
}

// NewRequest converts a Function URL event into an http.Request
func NewRequest(ctx context.Context, event events.LambdaFunctionURLRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("decode body: %w", err)
		}
		body = decoded
	}

	path := event.RawPath
	if path == "" {
		path = "/"
	}
	target := path
	if event.RawQueryString != "" {
		target += "?" + event.RawQueryString
	}

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}
	if len(event.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}
	if ip := event.RequestContext.HTTP.SourceIP; ip != "" {
		req.RemoteAddr = ip + ":0"
	}
	if host := event.RequestContext.DomainName; host != "" {
		req.Host = host
	}
	return req, nil
}

// NewResponse flattens an http.Response into a Function URL response.
// Non UTF-8 bodies are base64 encoded.
func NewResponse(resp *http.Response) (events.LambdaFunctionURLResponse, error) {
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return events.LambdaFunctionURLResponse{}, fmt.Errorf("read body: %w", err)
	}

	out := events.LambdaFunctionURLResponse{
		StatusCode: resp.StatusCode,
		Headers:    make(map[string]string, len(resp.Header)),
		Cookies:    resp.Header.Values("Set-Cookie"),
	}
	for k, vs := range resp.Header {
		if k == "Set-Cookie" {
			continue
		}
		out.Headers[k] = strings.Join(vs, ", ")
	}

	if utf8.Valid(buf.Bytes()) {
		out.Body = buf.String()
	} else {
		out.Body = base64.StdEncoding.EncodeToString(buf.Bytes())
		out.IsBase64Encoded = true
	}
	return out, nil
}
