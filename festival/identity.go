package festival

import (
	"net/url"
	"strings"
	"unicode"
)

// Fixed principals standing in for the non-email login methods.
const (
	IdentifierInternetIdentity = "internet-identity"
	IdentifierSocial           = "social-login"
)

// NormalizeIdentifier turns raw sign-in input into a principal. Emails and free
// text are trimmed and lower-cased; phone-like input keeps only its digits.
func NormalizeIdentifier(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", IdentifierInternetIdentity, IdentifierSocial:
		return s
	}
	if looksLikePhone(s) {
		return strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return r
			}
			return -1
		}, s)
	}
	return s
}

func looksLikePhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+', r == '-', r == ' ', r == '(', r == ')', r == '.':
		default:
			return false
		}
	}
	return digits >= 6
}

func defaultAvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(seed)
}
