package validate

import (
	"strings"
)

// CPF normalizes a Brazilian tax id to bare digits. An empty input is valid
// (the payment layer falls back to its placeholder); anything else must
// contain exactly 11 digits after stripping punctuation.
func CPF(s string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == ' ':
			// common formatting, dropped
		default:
			return "", false
		}
	}
	digits := b.String()
	if digits == "" {
		return "", true
	}
	return digits, len(digits) == 11
}

// Quantity bounds a cart line quantity to something sane.
func Quantity(n int) bool {
	return n >= 1 && n <= 999
}
