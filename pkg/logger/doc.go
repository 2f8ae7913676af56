// Package logger builds *slog.Logger instances with functional options,
// helper attribute constructors and transparent injection of values stored in
// context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks for every record. Request ids and
// client addresses stored in the request context by their middlewares show up
// in every record logged with that context.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			clientip.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
//
//	r := chi.NewRouter()
//	r.Use(logger.Middleware(log))
//
// Attribute helpers (Error, IP, Route, Component, ...) keep key names
// consistent across packages.
package logger
