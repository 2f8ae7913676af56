package ifconfig

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ifconfig/pkg/logger"
)

// Probe paths use two segments so they never shadow a header name.
const (
	LivePath  = "/-/live"
	ReadyPath = "/-/ready"
)

// RouterOptions configures Router. Probes are mounted only when set.
type RouterOptions struct {
	Service     *Service
	Middlewares []func(http.Handler) http.Handler
	Live        http.Handler
	Ready       http.Handler
	Logger      *slog.Logger // receives recovered panics, slog.Default when nil
}

// Router assembles the public HTTP surface: middlewares, probes and the
// lookup routes. Panics in handlers are logged and recovered into a 500.
//
//	r := ifconfig.Router(ifconfig.RouterOptions{
//		Service:     svc,
//		Middlewares: []func(http.Handler) http.Handler{requestid.Middleware},
//		Live:        httpserver.HealthCheckHandler(log),
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(opts.Middlewares...)
	r.Use(logger.Recoverer(opts.Logger))

	if opts.Live != nil {
		r.Method(http.MethodGet, LivePath, opts.Live)
	}
	if opts.Ready != nil {
		r.Method(http.MethodGet, ReadyPath, opts.Ready)
	}
	if opts.Service != nil {
		opts.Service.Register(r)
	}

	return r
}
