package useragent

import "regexp"

// cliPattern matches the user agents of command-line fetch tools.
// Case-sensitive: "Curl/1.0" is not a match, "Wget/1.21" is.
var cliPattern = regexp.MustCompile(`(curl|wget|Wget|fetch slibfetch)/.*$`)

// IsCLI reports whether the User-Agent value identifies a command-line client.
// An empty value is treated as a browser.
func IsCLI(ua string) bool {
	if ua == "" {
		return false
	}
	return cliPattern.MatchString(ua)
}
