package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-typed amount. A leading currency symbol is
// ignored. When both ',' and '.' appear, the last one is the decimal
// separator and the other groups thousands ("1.234,56", "1,234.56"). A lone
// separator is always decimal, so "1,000" is one, not a thousand.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.TrimSpace(clean)

	decimalSep, groupSep := ".", ","
	if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
		decimalSep, groupSep = ",", "."
	}
	if strings.Count(clean, decimalSep) > 1 {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	clean = strings.ReplaceAll(clean, groupSep, "")
	clean = strings.Replace(clean, decimalSep, ".", 1)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
