package templates

import "github.com/dmitrymomot/ifconfig/pkg/headers"

// IndexData is rendered by the Index page.
type IndexData struct {
	Cmd            string       // Selected command token, e.g. "wget"
	CmdWithOptions string       // Full command line for the token
	IPAddress      string       // Requester address
	Headers        *headers.Map // Projected headers
	Country        string       // Country label or "Unknown"
	Host           string       // Request host used in example commands
	UserAgent      string       // Human readable client description, may be empty
}
