package clientip

import "net/http"

// Middleware resolves the client IP once and stores it in the request context.
// Resolution failures are not handled here: the context is left without an IP
// and handlers calling FromRequest report the error themselves.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip, err := FromRequest(r); err == nil {
			r = r.WithContext(WithContext(r.Context(), ip))
		}
		next.ServeHTTP(w, r)
	})
}
