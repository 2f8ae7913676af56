package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/ifconfig/pkg/logger"
)

// statusFor maps err to an HTTP status. Anything that is not an HTTPError
// is an internal error.
func statusFor(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.Code >= http.StatusBadRequest {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// writeError writes the generic status text. Error details never reach the client.
func writeError(w http.ResponseWriter, status int) {
	h := w.Header()
	h.Del("Content-Length")
	h.Set("Content-Type", ContentTypeText)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}

func defaultErrorHandler[C Context](ctx C, err error) {
	if errors.Is(err, ErrWriteResponse) {
		return
	}
	writeError(ctx.ResponseWriter(), statusFor(err))
}

// NewErrorHandler returns an ErrorHandler that logs err with the request
// method and path and answers with a plain-text status line. Client errors
// are logged at warn level, server errors at error level. Failed body writes
// are only logged, since the response has already started.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		if errors.Is(err, ErrWriteResponse) {
			log.LogAttrs(r.Context(), slog.LevelWarn, "response write failed",
				logger.Error(err),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Component("error_handler"),
			)
			return
		}

		status := statusFor(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		writeError(ctx.ResponseWriter(), status)
	}
}
