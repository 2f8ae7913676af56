// Package handler provides typed HTTP handlers and buffered responses.
//
// A HandlerFunc receives a Context and a request struct populated by binders
// and returns a Response:
//
//	type lookupRequest struct {
//		Param string `path:"param"`
//	}
//
//	func lookup(ctx handler.Context, req lookupRequest) handler.Response {
//		return handler.Text(req.Param)
//	}
//
//	r.Get("/{param}", handler.Wrap(lookup,
//		handler.WithBinders[handler.Context, lookupRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, lookupRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// Text, JSON, PrettyJSON, Templ and Empty build the whole body in memory
// before touching the ResponseWriter. A failing render therefore never leaves
// a partial body behind and the ErrorHandler can still choose the status.
// Every response sets an explicit Content-Type; WithStatus, WithContentType
// and WithHeader adjust the defaults.
//
// # Errors
//
// Binding and render errors go to the configured ErrorHandler. HTTPError
// values select the status code; anything else becomes 500 Internal Server
// Error. NewErrorHandler logs the error through slog, so context extractors
// attach the request id, and writes only the generic status text.
package handler
