package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{" a@b.co ", true},
		{"John.Doe+news@Example-Mail.COM", true},
		{"x_y%z@sub.domain.org", true},
		{"a@b", false},
		{"a@@b.co", false},
		{"a@b.c", false},
		{"a@b.c0", false},
		{"@b.co", false},
		{"a b@c.co", false},
		{"not-an-email", false},
		{"bad", false},
		{"", false},
		{"a@b.co\nx", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.in))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"123-456-7890", true},
		{"  123-456-7890\t", true},
		{"1234567890", false},
		{"123-4567890", false},
		{"123-456-789", false},
		{"123-456-78901", false},
		{"(123) 456-7890", false},
		{"123-4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.in))
		})
	}
}
