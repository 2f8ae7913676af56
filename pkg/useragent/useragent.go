package useragent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent contains the parsed information from a user agent string
type UserAgent struct {
	userAgent string
	cli       bool
	client    Client
	os        string
}

// String returns the raw user agent
func (ua UserAgent) String() string { return ua.userAgent }

// IsCLI reports whether the agent was classified as a command-line client
func (ua UserAgent) IsCLI() bool { return ua.cli }

// Client returns the detected client software
func (ua UserAgent) Client() Client { return ua.client }

// OS returns the operating system identifier
func (ua UserAgent) OS() string { return ua.os }

// IsBrowser returns true if the client is an interactive browser
func (ua UserAgent) IsBrowser() bool { return ua.client.Kind == KindBrowser }

// IsUnknown returns true if neither client nor OS could be detected
func (ua UserAgent) IsUnknown() bool {
	return ua.client.Name == ClientUnknown && ua.os == OSUnknown
}

// displayNames overrides title-casing where it gets the brand wrong
var displayNames = map[string]string{
	OSMacOS:       "macOS",
	OSiOS:         "iOS",
	OSChromeOS:    "ChromeOS",
	OSFreeBSD:     "FreeBSD",
	ClientHTTPie:  "HTTPie",
	ClientGo:      "Go-http-client",
	ClientPython:  "python-requests",
	ClientSamsung: "Samsung Internet",
}

func displayName(name string) string {
	if d, ok := displayNames[name]; ok {
		return d
	}
	// Casers are stateful and must not be shared between goroutines
	return cases.Title(language.English).String(name)
}

// Describe returns a short human-readable description, e.g. "Firefox 118.0 on Linux".
func (ua UserAgent) Describe() string {
	if ua.IsUnknown() {
		return "Unknown client"
	}

	var sb strings.Builder
	if ua.client.Name == ClientUnknown {
		sb.WriteString("Unknown client")
	} else {
		sb.WriteString(displayName(ua.client.Name))
		if ua.client.Version != "" {
			sb.WriteString(" ")
			sb.WriteString(ua.client.Version)
		}
	}
	if ua.os != OSUnknown {
		sb.WriteString(" on ")
		sb.WriteString(displayName(ua.os))
	}
	return sb.String()
}

// Parse parses a user agent string. The returned value is usable even when an
// error is reported.
func Parse(ua string) (UserAgent, error) {
	if ua == "" {
		return UserAgent{client: Client{Name: ClientUnknown, Kind: KindUnknown}, os: OSUnknown}, ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)
	parsed := UserAgent{
		userAgent: ua,
		cli:       IsCLI(ua),
		client:    ParseClient(lowerUA),
		os:        ParseOS(lowerUA),
	}

	if parsed.IsUnknown() {
		return parsed, ErrUnknownClient
	}
	return parsed, nil
}
