package form

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single digit", in: "1", want: "1"},
		{name: "area code", in: "123", want: "123"},
		{name: "into exchange", in: "1234", want: "123-4"},
		{name: "full exchange", in: "123456", want: "123-456"},
		{name: "into line", in: "1234567", want: "123-456-7"},
		{name: "complete", in: "1234567890", want: "123-456-7890"},
		{name: "extra digits dropped", in: "12345678901234", want: "123-456-7890"},
		{name: "parens and spaces", in: "(123) 456-7890", want: "123-456-7890"},
		{name: "letters removed", in: "a1b2c3d4", want: "123-4"},
		{name: "no digits", in: "phone", want: ""},
		{name: "already formatted", in: "123-456-7890", want: "123-456-7890"},
		{name: "non-ascii digits ignored", in: "١٢٣456", want: "456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.in))
		})
	}
}

func TestFormatPhone_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("0123456789-() .+xé")

	for i := 0; i < 2000; i++ {
		n := rng.Intn(24)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		in := b.String()
		out := FormatPhone(in)

		digits := 0
		for _, r := range out {
			if r >= '0' && r <= '9' {
				digits++
				continue
			}
			assert.Equal(t, '-', r, "unexpected rune in %q", out)
		}
		assert.LessOrEqual(t, digits, 10, "too many digits in %q", out)
		assert.Equal(t, out, FormatPhone(out), "not idempotent for %q", in)

		if countDigits(in) >= 10 {
			assert.True(t, IsValidPhone(out), "%q formatted to invalid %q", in, out)
		}
	}
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
