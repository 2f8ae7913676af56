// Package httpserver runs an http.Handler with sane timeouts, graceful
// shutdown and structured logging.
//
// Run binds the listener first, so address conflicts are reported
// synchronously as ErrStart, then serves until the context is cancelled or
// the process receives SIGINT/SIGTERM. Shutdown is bounded by the configured
// timeout and failures wrap ErrShutdown.
//
// WithConnContext exposes http.Server.ConnContext so callers can attach
// per-connection data, such as the transport peer address, to every request
// context.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithConnContext(clientip.ConnContext),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler provides liveness and readiness endpoints.
package httpserver
