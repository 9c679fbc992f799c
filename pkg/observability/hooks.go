// Package observability provides hooks for instrumenting API calls.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive an event for every request attempt the GitHub client makes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for HTTP events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Hooks are registered by main, not by libraries, so the client package never
// imports a metrics or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.HTTP().OnRequest(ctx, "GET", "api.github.com", "/repos/o/r")
//	// ... perform request ...
//	observability.HTTP().OnResponse(ctx, "GET", "api.github.com", "/repos/o/r", 200, elapsed)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response of any status.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records a transport failure (network error, timeout, cancellation).
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// LogHTTPHooks writes every HTTP event to a logger at debug level.
type LogHTTPHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that trace requests through l.
func NewLogHooks(l *log.Logger) *LogHTTPHooks {
	return &LogHTTPHooks{logger: l}
}

func (h *LogHTTPHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *LogHTTPHooks) OnResponse(_ context.Context, method, host, path string, statusCode int, duration time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", statusCode,
		"elapsed", duration.Round(time.Millisecond))
}

func (h *LogHTTPHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}

var (
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = NoopHTTPHooks{}
}
