package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxDrain bounds how much of a response body is read before closing it, so
// keep-alive connections can be reused between polls.
const maxDrain = 64 << 10

type HTTPChecker struct {
	Client      *http.Client
	Logger      *zap.Logger
	URL         string
	CheckStatus bool
}

// NewHTTPChecker rejects targets that could never produce a request.
func NewHTTPChecker(logger *zap.Logger, target string, timeout time.Duration, checkStatus bool) (*HTTPChecker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	target = NormalizeURL(target)
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return nil, fmt.Errorf("invalid uri: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid uri %q: missing host", target)
	}
	return &HTTPChecker{
		Client:      &http.Client{Timeout: timeout},
		Logger:      logger,
		URL:         target,
		CheckStatus: checkStatus,
	}, nil
}

// NormalizeURL prefixes http:// when the target has no http or https scheme.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "http://" + raw
}

// Check issues a GET. Any completed exchange counts as up unless CheckStatus
// is set, in which case the status code must also be below 400.
func (h *HTTPChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		h.Logger.Warn("http_probe_failed", zap.String("url", h.URL), zap.Error(err))
		return CheckResult{Name: "HTTP", Success: false, Message: err.Error()}
	}

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		h.Logger.Warn("http_probe_failed",
			zap.String("url", h.URL),
			zap.Float64("latency_ms", latency),
			zap.Error(err),
		)
		return CheckResult{Name: "HTTP", Success: false, Message: err.Error(), LatencyMS: latency, Transient: true}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	success := !h.CheckStatus || resp.StatusCode < 400
	return CheckResult{
		Name:       "HTTP",
		Success:    success,
		Message:    resp.Status,
		LatencyMS:  latency,
		StatusCode: resp.StatusCode,
	}
}
