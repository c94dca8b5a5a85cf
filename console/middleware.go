package console

import (
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// withRequestLogging wraps a handler and logs one line per request with the
// response status and duration.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"durationMs", m.Duration.Milliseconds())
	})
}
