package useragent

import (
	"regexp"
	"strings"
)

// Client represents the software that issued the request
type Client struct {
	Name    string
	Version string
	Kind    string
}

// clientPattern defines a pattern for detecting a client
type clientPattern struct {
	Name     string
	Kind     string
	Keywords []string
	Excludes []string
	Regex    *regexp.Regexp
}

// extractVersion pulls the first capture group out of the UA string
func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

// matchPattern checks that any keyword is present and no exclude is
func matchPattern(ua string, pattern clientPattern) bool {
	for _, exclude := range pattern.Excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	for _, keyword := range pattern.Keywords {
		if strings.Contains(ua, keyword) {
			return true
		}
	}
	return false
}

// Detection patterns in order of checking priority. Command-line tools come
// first since some of them embed browser-like tokens.
var clientPatterns = []clientPattern{
	{
		Name:     ClientCurl,
		Kind:     KindCLI,
		Keywords: []string{"curl/"},
		Regex:    regexp.MustCompile(`curl/([\w.\-]+)`),
	},
	{
		Name:     ClientWget,
		Kind:     KindCLI,
		Keywords: []string{"wget/"},
		Regex:    regexp.MustCompile(`wget/([\w.\-]+)`),
	},
	{
		Name:     ClientFetch,
		Kind:     KindCLI,
		Keywords: []string{"fetch libfetch/", "fetch slibfetch/"},
		Regex:    regexp.MustCompile(`libfetch/([\w.\-]+)`),
	},
	{
		Name:     ClientHTTPie,
		Kind:     KindLibrary,
		Keywords: []string{"httpie/"},
		Regex:    regexp.MustCompile(`httpie/([\w.\-]+)`),
	},
	{
		Name:     ClientPython,
		Kind:     KindLibrary,
		Keywords: []string{"python-requests/"},
		Regex:    regexp.MustCompile(`python-requests/([\w.\-]+)`),
	},
	{
		Name:     ClientGo,
		Kind:     KindLibrary,
		Keywords: []string{"go-http-client/"},
		Regex:    regexp.MustCompile(`go-http-client/([\w.\-]+)`),
	},
	{
		Name:     ClientEdge,
		Kind:     KindBrowser,
		Keywords: []string{"edg/", "edge/"},
		Regex:    regexp.MustCompile(`(?:edge|edg)/([\d.]+)`),
	},
	{
		Name:     ClientSamsung,
		Kind:     KindBrowser,
		Keywords: []string{"samsungbrowser"},
		Regex:    regexp.MustCompile(`samsungbrowser/([\d.]+)`),
	},
	{
		Name:     ClientYandex,
		Kind:     KindBrowser,
		Keywords: []string{"yabrowser"},
		Regex:    regexp.MustCompile(`yabrowser/([\d.]+)`),
	},
	{
		Name:     ClientVivaldi,
		Kind:     KindBrowser,
		Keywords: []string{"vivaldi"},
		Regex:    regexp.MustCompile(`vivaldi/([\d.]+)`),
	},
	{
		Name:     ClientOpera,
		Kind:     KindBrowser,
		Keywords: []string{"opr/", "opera"},
		Regex:    regexp.MustCompile(`(?:opr|opera)[/\s]([\d.]+)`),
	},
	{
		Name:     ClientChrome,
		Kind:     KindBrowser,
		Keywords: []string{"chrome/", "crios/"},
		Regex:    regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`),
	},
	{
		Name:     ClientFirefox,
		Kind:     KindBrowser,
		Keywords: []string{"firefox/", "fxios/"},
		Regex:    regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
	},
	{
		Name:     ClientSafari,
		Kind:     KindBrowser,
		Keywords: []string{"safari/"},
		Excludes: []string{"chrome", "chromium", "android"},
		Regex:    regexp.MustCompile(`version/([\d.]+)`),
	},
	{
		Name:     ClientIE,
		Kind:     KindBrowser,
		Keywords: []string{"msie ", "trident/"},
		Regex:    regexp.MustCompile(`(?:msie |rv:)([\d.]+)`),
	},
}

// ParseClient detects the client software from a lower-cased user agent
func ParseClient(lowerUA string) Client {
	for _, pattern := range clientPatterns {
		if matchPattern(lowerUA, pattern) {
			return Client{
				Name:    pattern.Name,
				Version: extractVersion(lowerUA, pattern.Regex),
				Kind:    pattern.Kind,
			}
		}
	}
	return Client{Name: ClientUnknown, Kind: KindUnknown}
}
