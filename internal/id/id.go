package id

import (
	"fmt"
	"strconv"
	"strings"
)

// taxIDLen is the number of digits in a CPF.
const taxIDLen = 11

// NormalizeTaxID strips CPF punctuation ("123.456.789-00" -> "12345678900")
// and checks that what is left is exactly eleven digits.
func NormalizeTaxID(s string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == ' ':
			// punctuation
		default:
			return "", fmt.Errorf("invalid tax id %q: unexpected %q", s, r)
		}
	}
	digits := b.String()
	if len(digits) != taxIDLen {
		return "", fmt.Errorf("invalid tax id %q: want %d digits, got %d", s, taxIDLen, len(digits))
	}
	return digits, nil
}

// FormatTaxID renders a normalized tax id as "123.456.789-00".
// Anything that is not eleven digits is returned unchanged.
func FormatTaxID(taxID string) string {
	if len(taxID) != taxIDLen {
		return taxID
	}
	return taxID[0:3] + "." + taxID[3:6] + "." + taxID[6:9] + "-" + taxID[9:11]
}

// FormatAccountNumber returns the zero-padded display form, e.g. 7 -> "000007".
func FormatAccountNumber(n int) string {
	return fmt.Sprintf("%06d", n)
}

// ParseAccountNumber parses "7" or "000007" into 7.
func ParseAccountNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid account number %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid account number %q: must be positive", s)
	}
	return n, nil
}
