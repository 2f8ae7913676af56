// Package binder fills request structs from parts of an *http.Request.
//
// Each binder reads one source, selected by a struct tag:
//
//	type lookupRequest struct {
//		Param     string `path:"param"`
//		Format    string `query:"format"`
//		UserAgent string `header:"User-Agent"`
//	}
//
//	handler.Wrap(h, handler.WithBinders(
//		binder.Path(chi.URLParam),
//		binder.Query(),
//		binder.Header(),
//	))
//
// Supported field types are strings, signed and unsigned integers, booleans,
// pointers to those for optional values, and slices for repeated values.
// Missing values leave the field at its zero value. Fields tagged "-" are
// skipped.
//
// Binding failures wrap ErrFailedToParseQuery, ErrFailedToParsePath or
// ErrFailedToParseHeaders.
package binder
