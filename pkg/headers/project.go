package headers

import (
	"net/http"
	"slices"
	"strings"
)

// Entry names with special meaning in a projection
const (
	Host      = "host"
	Country   = "country"
	IPAddress = "ip-address"
)

// FromRequest returns the request headers keyed by lower-case name and
// ordered by name. Repeated headers are joined with ", ". The host entry is
// restored from r.Host.
func FromRequest(r *http.Request) *Map {
	names := make([]string, 0, len(r.Header)+1)
	values := make(map[string]string, len(r.Header)+1)

	for name, vv := range r.Header {
		key := strings.ToLower(name)
		if prev, ok := values[key]; ok {
			values[key] = prev + ", " + strings.Join(vv, ", ")
			continue
		}
		names = append(names, key)
		values[key] = strings.Join(vv, ", ")
	}
	if r.Host != "" {
		if _, ok := values[Host]; !ok {
			names = append(names, Host)
		}
		values[Host] = r.Host
	}

	slices.Sort(names)
	m := NewMap(len(names) + 2)
	for _, name := range names {
		m.Set(name, values[name])
	}
	return m
}

// Normalize removes one surrounding pair of double quotes from a header value.
// The inner text is returned as is: escape sequences are not decoded and
// quotes inside the value are kept.
func Normalize(value string) string {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return value
	}
	return value[1 : len(value)-1]
}

// Project builds the display projection of raw: every value normalized, host
// removed, country and ip-address appended last.
func Project(raw *Map, address, country string) *Map {
	proj := NewMap(raw.Len() + 2)
	for name, value := range raw.All() {
		if strings.EqualFold(name, Host) {
			continue
		}
		proj.Set(name, Normalize(value))
	}
	proj.Append(Country, country)
	proj.Append(IPAddress, address)
	return proj
}

// Lookup returns the normalized value of the raw header called name. The match
// is case-sensitive against the lower-case names produced by FromRequest.
func Lookup(raw *Map, name string) (string, bool) {
	value, ok := raw.Get(name)
	if !ok {
		return "", false
	}
	return Normalize(value), true
}
