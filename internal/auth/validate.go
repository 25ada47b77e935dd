package auth

import (
	"net/mail"
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func isValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

func isValidUsername(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || len(trimmed) > 32 {
		return false
	}
	return usernamePattern.MatchString(value)
}

// Password policy: at least 15 characters after trimming. Length is the only
// requirement; composition rules are deliberately not enforced.
func isValidPassword(password string) bool {
	return len(strings.TrimSpace(password)) >= 15
}

func containsNull(value string) bool {
	return strings.ContainsRune(value, '\x00')
}
