package useragent

import "strings"

// keywordSet holds substrings that identify one operating system
type keywordSet []string

func newKeywordSet(keywords ...string) keywordSet {
	return keywordSet(keywords)
}

func (k keywordSet) contains(s string) bool {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

var (
	windowsKeywords  = newKeywordSet("windows", "win64", "win32")
	iOSKeywords      = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords    = newKeywordSet("macintosh", "mac os x", "darwin")
	androidKeywords  = newKeywordSet("android")
	chromeOSKeywords = newKeywordSet("cros", "chromeos")
	freeBSDKeywords  = newKeywordSet("freebsd")
	linuxKeywords    = newKeywordSet("linux", "ubuntu", "debian", "fedora", "x11")
)

// ParseOS identifies the operating system from a lower-cased user agent.
// Order matters: iOS agents mention "mac os x", Android agents mention "linux".
func ParseOS(lowerUA string) string {
	switch {
	case lowerUA == "":
		return OSUnknown
	case windowsKeywords.contains(lowerUA):
		return OSWindows
	case iOSKeywords.contains(lowerUA):
		return OSiOS
	case macOSKeywords.contains(lowerUA):
		return OSMacOS
	case androidKeywords.contains(lowerUA):
		return OSAndroid
	case chromeOSKeywords.contains(lowerUA):
		return OSChromeOS
	case freeBSDKeywords.contains(lowerUA):
		return OSFreeBSD
	case linuxKeywords.contains(lowerUA):
		return OSLinux
	}
	return OSUnknown
}
