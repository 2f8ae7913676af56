// Package headers turns an http.Header collection into ordered, display-safe
// mappings.
//
// Two shapes are produced. FromRequest builds the raw view of a request: one
// entry per header with a lower-cased name, multiple values joined with ", ",
// and the Host header restored from http.Request.Host (net/http strips it from
// the header map). Project derives the projection shown to users: values are
// normalized, host is removed, and the synthesized "country" and
// "ip-address" entries are appended last.
//
//	raw := headers.FromRequest(r)
//	proj := headers.Project(raw, "203.0.113.7", "Germany")
//	for name, value := range proj.All() {
//		fmt.Println(name, value)
//	}
//
// Map keeps insertion order and serializes to JSON in that order, so output is
// deterministic for a given request.
package headers
