package ifconfig

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/ifconfig/pkg/clientip"
	"github.com/dmitrymomot/ifconfig/pkg/headers"
	"github.com/dmitrymomot/ifconfig/pkg/useragent"
)

// RequestContext is everything the router needs to know about one request.
// It is built once and not modified afterwards.
type RequestContext struct {
	RemoteAddress string
	IsCLI         bool
	Headers       *headers.Map // raw headers, lower-case names, includes host
	Param         string       // single path segment, empty on the root path
	Unmatched     bool         // path did not match any route
	Cmd           string
	Host          string
	UserAgent     useragent.UserAgent
}

// lookupRequest is bound from the request by the handler binders. Every
// field names the one source it may come from, since untagged fields would
// otherwise be filled by every binder.
type lookupRequest struct {
	Param     string  `path:"param" query:"-" header:"-"`
	Cmd       *string `path:"-" query:"cmd" header:"-"`
	UserAgent string  `path:"-" query:"-" header:"User-Agent"`
}

// newRequestContext resolves the peer address and collects the headers of r.
// The address comes from the connection only; forwarding headers are ignored.
func newRequestContext(r *http.Request, req lookupRequest) (RequestContext, error) {
	addr, err := clientip.FromRequest(r)
	if err != nil {
		return RequestContext{}, fmt.Errorf("resolve client address: %w", err)
	}

	// An explicit empty cmd is kept and shows no example command.
	cmd := DefaultCmd
	if req.Cmd != nil {
		cmd = *req.Cmd
	}

	// Parse reports unknown agents as errors but still returns a usable value.
	ua, _ := useragent.Parse(req.UserAgent)

	return RequestContext{
		RemoteAddress: addr,
		IsCLI:         useragent.IsCLI(req.UserAgent),
		Headers:       headers.FromRequest(r),
		Param:         req.Param,
		Cmd:           cmd,
		Host:          r.Host,
		UserAgent:     ua,
	}, nil
}
