package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/ifconfig/pkg/logger"
)

// Probe reports whether a dependency is ready to serve traffic.
type Probe func(ctx context.Context) error

// HealthCheckHandler serves liveness and readiness probes.
//
// Without probes it answers 200 "ALIVE". With probes it runs each of them
// against the request context and answers 200 "READY" when all pass, or
// 503 "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, probes ...Probe) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Cache-Control", "no-store")

		if len(probes) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, probe := range probes {
			if err := probe(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", logger.Error(err), logger.Component("httpserver"))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
