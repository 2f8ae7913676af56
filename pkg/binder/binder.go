package binder

import (
	"net/http"
	"net/textproto"
)

// Func populates v from r.
type Func func(r *http.Request, v any) error

// Query binds URL query parameters using the `query` struct tag.
func Query() Func {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindToStruct(v, "query", func(name string) []string { return q[name] }, ErrFailedToParseQuery)
	}
}

// Path binds route parameters using the `path` struct tag. The extractor
// resolves a parameter by name, for example chi.URLParam. Empty values leave
// the field untouched.
func Path(extractor func(r *http.Request, name string) string) Func {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "path", func(name string) []string {
			if extractor == nil {
				return nil
			}
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrFailedToParsePath)
	}
}

// Header binds request headers using the `header` struct tag. Tag names are
// matched case-insensitively. Slice fields receive every value of a repeated
// header.
func Header() Func {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "header", func(name string) []string {
			return r.Header[textproto.CanonicalMIMEHeaderKey(name)]
		}, ErrFailedToParseHeaders)
	}
}
