package useragent

// Client kinds
const (
	// KindCLI identifies scripted command-line clients
	KindCLI = "cli"

	// KindBrowser identifies interactive browsers
	KindBrowser = "browser"

	// KindLibrary identifies HTTP client libraries (python-requests, Go-http-client, ...)
	KindLibrary = "library"

	// KindUnknown is used when the client cannot be determined
	KindUnknown = "unknown"
)

// Client name identifiers
const (
	ClientCurl    = "curl"
	ClientWget    = "wget"
	ClientFetch   = "fetch"
	ClientHTTPie  = "httpie"
	ClientPython  = "python-requests"
	ClientGo      = "go-http-client"
	ClientChrome  = "chrome"
	ClientFirefox = "firefox"
	ClientSafari  = "safari"
	ClientEdge    = "edge"
	ClientOpera   = "opera"
	ClientVivaldi = "vivaldi"
	ClientYandex  = "yandex"
	ClientSamsung = "samsung internet"
	ClientIE      = "internet explorer"
	ClientUnknown = "unknown"
)

// Operating system identifiers
const (
	OSWindows  = "windows"
	OSMacOS    = "macos"
	OSiOS      = "ios"
	OSAndroid  = "android"
	OSLinux    = "linux"
	OSChromeOS = "chromeos"
	OSFreeBSD  = "freebsd"
	OSUnknown  = "unknown"
)
