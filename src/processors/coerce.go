package processors

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal converts an arbitrary scalar from the upstream feed to a decimal.
// It is total: nil, empty strings, "nan"/"null"/"none" (any casing) and
// anything unparseable all become zero. It never panics.
func ToDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case float32:
		return ToDecimal(float64(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return parseDecimalString(v.String())
	case string:
		return parseDecimalString(v)
	default:
		return parseDecimalString(fmt.Sprint(value))
	}
}

func parseDecimalString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "null", "none":
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToInt is the integer companion of ToDecimal, used for overdue_days and
// tenure. Fractional values truncate toward zero.
func ToInt(value any) int {
	return int(ToDecimal(value).IntPart())
}
