// Package clientip resolves the network address of the peer that sent an
// *http.Request.
//
// Only the transport layer is trusted. Forwarding headers such as
// X-Forwarded-For or X-Real-IP are never consulted.
//
// The peer endpoint is taken from the live connection: install ConnContext as
// the server's http.Server.ConnContext hook and every request context carries
// the net.Conn remote address. Requests that did not pass through the hook
// (tests, handlers mounted on foreign servers) fall back to
// http.Request.RemoteAddr, which net/http fills from the same connection.
//
// # Usage
//
//	srv := &http.Server{
//		Handler:     clientip.Middleware(mux),
//		ConnContext: clientip.ConnContext,
//	}
//
//	// Inside a handler
//	ip, err := clientip.FromRequest(r)
//	if err != nil {
//		// transport anomaly, respond with 500
//	}
//
// # Errors
//
// FromRequest returns ErrNoPeerAddress when the connection carries no address
// and ErrMalformedAddress when the address does not parse as an IP. Both
// indicate a transport-layer anomaly rather than bad client input.
package clientip
