package form

import "strings"

const phoneDigits = 10

// FormatPhone normalizes raw phone input into the 3-3-4 hyphenated display form.
// Partial input is grouped as far as it goes, extra digits are dropped.
func FormatPhone(raw string) string {
	// Keep ASCII digits only, at most ten of them
	digits := make([]byte, 0, phoneDigits)
	for i := 0; i < len(raw) && len(digits) < phoneDigits; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}

	parts := make([]string, 0, 3)
	if len(digits) > 0 {
		parts = append(parts, string(digits[:min(3, len(digits))]))
	}
	if len(digits) > 3 {
		parts = append(parts, string(digits[3:min(6, len(digits))]))
	}
	if len(digits) > 6 {
		parts = append(parts, string(digits[6:]))
	}

	return strings.Join(parts, "-")
}
