package sanitizer

import (
	"net/mail"
	"strings"
)

// Email trims and validates a single email address against RFC 5322 syntax.
// Returns the bare normalized address (no display name) and whether the
// input was a plausible address at all.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "\r\n") {
		return "", false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", false
	}

	// mail.ParseAddress accepts local-only addresses like "user@localhost";
	// outbound email needs a dotted domain.
	at := strings.LastIndexByte(addr.Address, '@')
	if at < 0 || !strings.Contains(addr.Address[at+1:], ".") {
		return "", false
	}

	return addr.Address, true
}

// SingleLine collapses CR, LF, and TAB into single spaces and trims the
// result. Use for values destined for HTTP header fields.
func SingleLine(s string) string {
	replacer := strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")
	return strings.TrimSpace(replacer.Replace(s))
}
