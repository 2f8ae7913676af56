package ifconfig

// Kind identifies the response strategy chosen for a request.
type Kind int

const (
	KindAddress     Kind = iota + 1 // bare address for command-line clients
	KindIndex                       // HTML index page for browsers
	KindCountry                     // plain-text country label
	KindHeadersJSON                 // projected headers as pretty JSON
	KindHeaderEcho                  // value of a single request header
	KindSilentMiss                  // empty 200 for command-line clients
	KindNotFound                    // not-found page for browsers
)

// Reserved path parameters.
const (
	ParamCountry = "country"
	ParamAllJSON = "all.json"
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindIndex:
		return "index"
	case KindCountry:
		return "country"
	case KindHeadersJSON:
		return "headers_json"
	case KindHeaderEcho:
		return "header_echo"
	case KindSilentMiss:
		return "silent_miss"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Route is the outcome of Decide. Header is set only for KindHeaderEcho.
type Route struct {
	Kind   Kind
	Header string
}

// Decide picks the response strategy for rc. It has no side effects.
//
// The root path answers with the bare address to command-line clients and
// with the index page to browsers. A single path segment is matched against
// "country", then "all.json", then the lower-case request header names.
// Everything else is a miss.
func Decide(rc RequestContext) Route {
	if rc.Unmatched {
		return miss(rc)
	}

	switch rc.Param {
	case "":
		if rc.IsCLI {
			return Route{Kind: KindAddress}
		}
		return Route{Kind: KindIndex}
	case ParamCountry:
		return Route{Kind: KindCountry}
	case ParamAllJSON:
		return Route{Kind: KindHeadersJSON}
	}

	if rc.Headers.Has(rc.Param) {
		return Route{Kind: KindHeaderEcho, Header: rc.Param}
	}
	return miss(rc)
}

func miss(rc RequestContext) Route {
	if rc.IsCLI {
		return Route{Kind: KindSilentMiss}
	}
	return Route{Kind: KindNotFound}
}
