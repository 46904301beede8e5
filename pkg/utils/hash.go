package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// SubmissionID derives a stable, non-reversible id from a phone number.
// Only digits count, so "123-456-7890" and "(123) 456 7890" share an id.
func SubmissionID(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	h := sha256.New()
	h.Write([]byte(digits))

	// Twelve bytes are plenty to correlate log lines
	return hex.EncodeToString(h.Sum(nil)[:12])
}
