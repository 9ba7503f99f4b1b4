package analysis

import (
	"net/url"
	"strings"
)

// URLHost returns the host of an article URL for logs. Paths and queries
// are dropped; unparsable input yields "invalid".
func URLHost(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return "invalid"
	}
	return u.Hostname()
}
