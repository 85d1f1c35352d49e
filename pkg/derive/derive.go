// Package derive implements the pure value derivations shown on directory
// cards: discount figures, per-area prices, and the shared numeric parsing
// used by filters and form validation.
package derive

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DiscountPercent returns the rounded percentage saved when buying at the
// discounted price. Defined only when both prices are present and the
// original price is positive; nil otherwise. A nil result must never be
// rendered as 0%.
func DiscountPercent(original, discounted *float64) *int {
	if original == nil || discounted == nil || *original <= 0 {
		return nil
	}
	pct := int(math.Round((*original - *discounted) / *original * 100))
	return &pct
}

// DiscountAmount returns the absolute amount saved, under the same
// preconditions as DiscountPercent.
func DiscountAmount(original, discounted *float64) *float64 {
	if original == nil || discounted == nil || *original <= 0 {
		return nil
	}
	amount := *original - *discounted
	return &amount
}

// PricePerArea returns price/area rounded to two decimals. Defined only when
// both values are present and positive; nil otherwise — never Inf or NaN.
func PricePerArea(price, area *float64) *float64 {
	if price == nil || area == nil || *price <= 0 || *area <= 0 {
		return nil
	}
	v := math.Round(*price / *area * 100) / 100
	return &v
}

// ParseAmount parses a human-entered numeric string into a float64.
//
// Rules: when both '.' and ',' appear, the rightmost is the decimal
// separator and the other is a group separator. A single ',' is a decimal
// separator ("1,5" == 1.5). A single '.' followed by exactly three digits is
// a thousands group ("1.234" == 1234); any other single '.' is a decimal
// separator ("1.23" == 1.23). Spaces between digit groups are stripped.
// Currency signs and unit suffixes are rejected.
func ParseAmount(s string) (float64, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, fmt.Errorf("empty amount")
	}
	v = strings.ReplaceAll(v, " ", "")

	neg := false
	if strings.HasPrefix(v, "-") {
		neg = true
		v = v[1:]
	}

	dot := strings.LastIndex(v, ".")
	comma := strings.LastIndex(v, ",")

	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.ReplaceAll(v, ".", "")
			v = strings.Replace(v, ",", ".", 1)
		}
	case comma >= 0:
		if strings.Count(v, ",") > 1 {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.Replace(v, ",", ".", 1)
		}
	case dot >= 0:
		if strings.Count(v, ".") > 1 {
			v = strings.ReplaceAll(v, ".", "")
		} else if len(v)-dot-1 == 3 {
			// "1.234" is a thousands group, "1.23" a decimal.
			v = strings.ReplaceAll(v, ".", "")
		}
	}

	result, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if neg {
		result = -result
	}
	return result, nil
}
