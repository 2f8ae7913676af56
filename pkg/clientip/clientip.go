package clientip

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// FromRequest returns the caller's IP address with any port suffix removed.
// Only the transport peer is used: the connection address stored by
// ConnContext, or r.RemoteAddr when the hook was not installed.
func FromRequest(r *http.Request) (string, error) {
	addr := peerFromContext(r.Context())
	if addr == "" {
		addr = r.RemoteAddr
	}
	return Parse(addr)
}

// Parse strips the port from a "host:port" peer address and normalizes the
// host. IPv4-mapped IPv6 addresses are reported in their IPv4 form.
func Parse(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", ErrNoPeerAddress
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		// No port present, assume the value is already a bare host
		host = strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	}

	ip, err := netip.ParseAddr(host)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedAddress, addr)
	}
	// Zones are link-local noise and never useful to the caller
	return ip.Unmap().WithZone("").String(), nil
}
