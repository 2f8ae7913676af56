package ifconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ifconfig/pkg/headers"
)

func rawHeaders(pairs ...string) *headers.Map {
	m := headers.NewMap(len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

func TestDecide(t *testing.T) {
	t.Parallel()

	raw := rawHeaders(
		"accept-language", "en-US",
		"country", "spoofed",
		"all.json", "spoofed",
		"host", "example.com",
	)

	tests := []struct {
		name string
		rc   RequestContext
		want Route
	}{
		{"cli root", RequestContext{IsCLI: true, Headers: raw}, Route{Kind: KindAddress}},
		{"browser root", RequestContext{Headers: raw}, Route{Kind: KindIndex}},
		{"country wins over header", RequestContext{Param: "country", Headers: raw}, Route{Kind: KindCountry}},
		{"all.json wins over header", RequestContext{Param: "all.json", IsCLI: true, Headers: raw}, Route{Kind: KindHeadersJSON}},
		{"header echo", RequestContext{Param: "accept-language", Headers: raw}, Route{Kind: KindHeaderEcho, Header: "accept-language"}},
		{"host echo", RequestContext{Param: "host", IsCLI: true, Headers: raw}, Route{Kind: KindHeaderEcho, Header: "host"}},
		{"header match is case-sensitive", RequestContext{Param: "Accept-Language", Headers: raw}, Route{Kind: KindNotFound}},
		{"browser miss", RequestContext{Param: "does-not-exist-header", Headers: raw}, Route{Kind: KindNotFound}},
		{"cli miss", RequestContext{Param: "does-not-exist-header", IsCLI: true, Headers: raw}, Route{Kind: KindSilentMiss}},
		{"unmatched browser", RequestContext{Unmatched: true, Headers: raw}, Route{Kind: KindNotFound}},
		{"unmatched cli", RequestContext{Unmatched: true, IsCLI: true, Headers: raw}, Route{Kind: KindSilentMiss}},
		{"nil headers", RequestContext{Param: "accept"}, Route{Kind: KindNotFound}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Decide(tt.rc))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "address", KindAddress.String())
	assert.Equal(t, "headers_json", KindHeadersJSON.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestLookupCmd(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"curl":          "curl",
		"wget":          "wget -qO -",
		"fetch":         "fetch -qo -",
		"unknown-token": "",
		"":              "",
		"WGET":          "",
	}
	for token, want := range tests {
		assert.Equal(t, want, LookupCmd(token), token)
	}
}
