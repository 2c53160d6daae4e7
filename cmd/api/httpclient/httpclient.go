package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/trace"
	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
)

// Config captures the shared settings for outbound HTTP clients.
type Config struct {
	Timeout time.Duration
}

// loggingRoundTripper logs every outbound HTTP call and propagates
// X-Request-Id / X-Span-Id headers for cross-service correlation.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	ctx := req.Context()
	requestID, spanID := trace.NextSpanID(ctx)
	if requestID == "" {
		// Used outside the middleware; keep correlation working anyway.
		requestID = req.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		if spanID == "" {
			spanID = "1"
		}
	}
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)

	fields := logger.Fields{
		"request_id":  requestID,
		"span_id":     spanID,
		"method":      req.Method,
		"url":         req.URL.Redacted(),
		"duration_ms": duration.Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.WarnWithFields("outbound request failed", fields)
		return resp, err
	}
	fields["status"] = resp.StatusCode
	logger.InfoWithFields("outbound request", fields)
	return resp, nil
}

// New builds an *http.Client with the logging round tripper installed.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport},
	}
}

// BaseClient pairs an http.Client with a base URL so callers build
// requests from relative paths.
type BaseClient struct {
	client  *http.Client
	baseURL string
}

func NewBaseClientWithClient(client *http.Client, baseURL string) *BaseClient {
	return &BaseClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// NewRequest builds a request against the base URL. Query values are
// optional.
func (b *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := url.Parse(b.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path = path.Join(u.Path, relPath)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, u.String(), body)
}

func (b *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return b.client.Do(req)
}

// ReadBody drains a response body with a size cap.
func ReadBody(resp *http.Response, maxBytes int64) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxBytes))
}

// Drain is a convenience for paths that only care about the status.
func Drain(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
