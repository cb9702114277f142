package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

// Logger writes one line per request. 5xx responses log at error level and
// 4xx at warn. The matched route and admin id come from the request as the
// router saw it.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			// Auth runs further in, so the identity is read from the
			// request the inner handlers saw.
			holder := &requestHolder{}
			next.ServeHTTP(sw, r.WithContext(withRequestHolder(r.Context(), holder)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if inner := holder.get(); inner != nil {
				if inner.Pattern != "" {
					attrs = append(attrs, slog.String("route", inner.Pattern))
				}
				if id, ok := ctxutil.IdentityFromCtx(inner.Context()); ok {
					attrs = append(attrs, slog.String("admin_id", id.ID.String()))
				}
			}

			logger.LogAttrs(r.Context(), levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.status = http.StatusOK
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
