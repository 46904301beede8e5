package form

import (
	"regexp"
	"strings"
)

// Messages shown beneath the email and phone fields.
const (
	MsgInvalidEmail = "Please enter a valid email address."
	MsgInvalidPhone = "Please enter a valid phone number."
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)
)

// IsValidEmail reports whether s, once trimmed, has a basic name@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// IsValidPhone reports whether s, once trimmed, is a complete DDD-DDD-DDDD number.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

func emailMessage(s string) string {
	if IsValidEmail(s) {
		return ""
	}
	return MsgInvalidEmail
}

func phoneMessage(s string) string {
	if IsValidPhone(s) {
		return ""
	}
	return MsgInvalidPhone
}
