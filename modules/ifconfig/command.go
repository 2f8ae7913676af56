package ifconfig

// DefaultCmd is the command shown on the index page without a cmd parameter.
const DefaultCmd = "curl"

var commands = map[string]string{
	"curl":  "curl",
	"wget":  "wget -qO -",
	"fetch": "fetch -qo -",
}

// LookupCmd returns the command line that prints a URL to stdout for the
// given tool, or an empty string for unknown tools.
func LookupCmd(token string) string {
	return commands[token]
}
