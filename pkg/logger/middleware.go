package logger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware writes one access log record per request. Server errors are
// logged at error level, everything else at info.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				Status(status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("user_agent", r.UserAgent()),
				Duration(time.Since(start)),
			)
		})
	}
}
