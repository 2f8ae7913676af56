// Package useragent classifies HTTP User-Agent strings.
//
// The primary entry point is IsCLI, which decides whether a request came from
// a scripted command-line client (curl, wget, fetch) or from an interactive
// browser. The decision drives response shaping: command-line clients get
// bare text, browsers get HTML.
//
// Parse goes one step further and extracts a client name, version and
// operating system so pages can describe the caller back to them:
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//		// ua is still usable; it describes an unknown client
//	}
//	fmt.Println(ua.Describe()) // "Firefox 118.0 on Linux"
//
// # Classification rules
//
// A client is a command-line client when its User-Agent matches the
// case-sensitive pattern
//
//	(curl|wget|Wget|fetch slibfetch)/.*$
//
// The match is unanchored on the left, so the token may appear anywhere in the
// header value. An empty or missing header is never a command-line client.
//
// # Errors
//
// IsCLI never fails. Parse returns ErrEmptyUserAgent or ErrUnknownClient
// together with a usable UserAgent value; callers treat both as informational.
package useragent
