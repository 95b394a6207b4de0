package sms

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatAmount renders a monetary value with two decimal places and
// thousands separators, e.g. 1234.5 -> "1,234.50". Values that cannot
// be interpreted as a number format to "0.00" rather than failing;
// a notification must never abort over a malformed amount.
func FormatAmount(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return "0.00"
	}
	return humanize.FormatFloat("#,###.##", f)
}

func toFloat(v any) (float64, bool) {
	switch a := v.(type) {
	case float64:
		return a, true
	case float32:
		return float64(a), true
	case int:
		return float64(a), true
	case int32:
		return float64(a), true
	case int64:
		return float64(a), true
	case uint:
		return float64(a), true
	case uint64:
		return float64(a), true
	case json.Number:
		f, err := a.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		return f, err == nil
	case fmt.Stringer:
		f, err := strconv.ParseFloat(strings.TrimSpace(a.String()), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
