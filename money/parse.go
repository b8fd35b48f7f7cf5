package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseLocaleDecimal implements spec.md §4.3's numeric coercion: an
// optional leading sign, every '.' removed (thousand separator), and the
// first remaining ',' replaced with '.'. A second ',' or a sign anywhere
// but the first byte is rejected.
func parseLocaleDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty numeric field")
	}

	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign = string(s[0])
		s = s[1:]
	}
	if strings.ContainsAny(s, "+-") {
		return decimal.Decimal{}, fmt.Errorf("embedded sign in numeric field %q", raw)
	}

	s = strings.ReplaceAll(s, ".", "")

	commaIdx := strings.IndexByte(s, ',')
	if commaIdx >= 0 {
		rest := s[commaIdx+1:]
		if strings.ContainsRune(rest, ',') {
			return decimal.Decimal{}, fmt.Errorf("multiple decimal separators in numeric field %q", raw)
		}
		s = s[:commaIdx] + "." + rest
	}

	d, err := decimal.NewFromString(sign + s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid numeric field %q: %w", raw, err)
	}
	return d, nil
}
