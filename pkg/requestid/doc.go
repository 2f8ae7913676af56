// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reads the X-Request-ID header, keeps it when it is well formed and
// otherwise generates a UUID. The id is stored in the request context, echoed
// back in the response header and picked up by the logger through
// LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
