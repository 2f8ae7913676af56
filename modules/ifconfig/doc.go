// Package ifconfig answers HTTP requests with information about the caller:
// public address, country and request headers.
//
// Every request is reduced to a RequestContext and passed to Decide, a pure
// function that selects one response strategy (Kind). Service.Respond then
// executes it:
//
//	GET /            address (command-line clients) or index page (browsers)
//	GET /country     country label
//	GET /all.json    projected headers as pretty JSON
//	GET /{header}    value of the named request header
//	anything else    empty body for command-line clients, not-found page for browsers
//
// Command-line clients are recognised by their User-Agent. The caller address
// is always the transport peer; forwarding headers are ignored.
package ifconfig
