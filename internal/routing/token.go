// Package routing derives the per-developer routing subdomain token
// used to isolate redirected traffic.
package routing

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// tokenSuffixLen is the number of hash characters appended to the
// sanitized username.
const tokenSuffixLen = 4

// DeriveToken maps a local username to its routing subdomain token.
// The token is deterministic per user: the same username always yields
// the same token, so repeated runs route to the same subdomain. The
// result is a DNS-label-safe lowercase string of the form
// "<sanitized-username>-<hash>".
func DeriveToken(username string) string {
	sanitized := sanitizeLabel(username)
	sum := sha256.Sum256([]byte(strings.ToLower(username)))
	suffix := fmt.Sprintf("%x", sum)[:tokenSuffixLen]
	if sanitized == "" {
		return "user-" + suffix
	}
	return sanitized + "-" + suffix
}

// sanitizeLabel lowercases the input and drops everything that is not
// a letter or digit, truncating to keep the final token well under the
// DNS label limit.
func sanitizeLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	label := b.String()
	const maxLen = 32
	if len(label) > maxLen {
		label = label[:maxLen]
	}
	return label
}
