package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice converts a currency-formatted amount such as "$3.50" into a
// decimal. Storefront menus historically send prices as display strings,
// so symbols and grouping characters are stripped before parsing. An
// amount with no digits left after stripping is an explicit error; a
// malformed price is rejected here and never reaches a cart.
func ParsePrice(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("unparsable price %q", s)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparsable price %q: %w", s, err)
	}
	return d, nil
}
