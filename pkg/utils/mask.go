package utils

import "strings"

// MaskSecret hides every letter and digit except the last four, keeping
// separators so the shape stays readable: "1234-5678-9012-3456" -> "****-****-****-3456".
// Values of four or fewer significant characters are fully masked.
func MaskSecret(s string) string {
	runes := []rune(strings.TrimSpace(s))

	significant := 0
	for _, r := range runes {
		if isSignificant(r) {
			significant++
		}
	}

	keep := 0
	if significant > 4 {
		keep = 4
	}

	seen := 0
	for i, r := range runes {
		if !isSignificant(r) {
			continue
		}
		seen++
		if seen <= significant-keep {
			runes[i] = '*'
		}
	}
	return string(runes)
}

// MaskEmail keeps the first and last character of the local part.
//
//	"user@example.com" -> "u**r@example.com"
//	"ab@example.com"   -> "a*@example.com"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return MaskSecret(email)
	}

	local := []rune(email[:at])
	switch len(local) {
	case 1:
	case 2:
		local[1] = '*'
	default:
		for i := 1; i < len(local)-1; i++ {
			local[i] = '*'
		}
	}
	return string(local) + email[at:]
}

func isSignificant(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
