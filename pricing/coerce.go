package pricing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Vendor field-name synonyms, most specific first. The order is significant:
// the first non-empty field wins.
var (
	sellPriceFields = []string{
		"price", "sell_price", "sellPrice", "selling_price", "price_per_person", "pp_price", "amount", "rate",
	}
	parentPriceFields = []string{
		"parent_price", "parentPrice", "list_price", "rack_price", "original_price", "regular_price", "strike_price",
	}
	occupancyCodeFields = []string{"occupancy", "occupancy_id", "occupancyId", "code"}
	idFields            = []string{"id", "uuid", "code"}
	nameFields          = []string{"name", "title", "display_name", "displayName"}
	cabinTypeFields     = []string{"cabin_types", "cabinTypes", "cabins"}
	occupancyListFields = []string{"occupancy", "occupancies", "prices"}
)

// toDecimal coerces a JSON value into a non-negative amount. Strings must be
// plain numbers; anything carrying currency symbols or separators is rejected.
func toDecimal(v any) (decimal.Decimal, bool) {
	var d decimal.Decimal
	switch n := v.(type) {
	case float64:
		d = decimal.NewFromFloat(n)
	case float32:
		d = decimal.NewFromFloat32(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		d = parsed
	case decimal.Decimal:
		d = n
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, false
		}
		d = parsed
	default:
		return decimal.Zero, false
	}
	if d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// isEmpty reports whether a vendor field should be skipped when walking a
// synonym list. Zero amounts count as empty: vendors send 0 for "not priced".
func isEmpty(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(n)
		return s == "" || s == "0"
	case float64:
		return n == 0
	case int:
		return n == 0
	case int64:
		return n == 0
	case json.Number:
		f, err := n.Float64()
		return err == nil && f == 0
	}
	return false
}

// firstAmount evaluates the first non-empty field from keys. The second return
// value is false if every field is empty or the chosen one is malformed.
func firstAmount(rec map[string]any, keys []string) (decimal.Decimal, bool) {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || isEmpty(v) {
			continue
		}
		return toDecimal(v)
	}
	return decimal.Zero, false
}

// parentAmount returns the list price only when it is strictly above price
func parentAmount(rec map[string]any, price decimal.Decimal) *decimal.Decimal {
	parent, ok := firstAmount(rec, parentPriceFields)
	if !ok || !parent.GreaterThan(price) {
		return nil
	}
	return &parent
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := strconv.Atoi(n.String())
		return i, err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func intField(rec map[string]any, keys []string) (int, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return toInt(v)
		}
	}
	return 0, false
}

// stringField returns the first present field rendered as text. Numeric ids
// are common upstream, so numbers are formatted rather than skipped.
func stringField(rec map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := rec[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int, int64, json.Number:
			return fmt.Sprint(v)
		}
	}
	return ""
}

func mapField(rec map[string]any, key string) map[string]any {
	m, _ := rec[key].(map[string]any)
	return m
}

// recordList returns the objects of a JSON array, dropping anything else
func recordList(v any) []map[string]any {
	switch list := v.(type) {
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case []map[string]any:
		return list
	}
	return nil
}

func firstList(rec map[string]any, keys []string) []map[string]any {
	for _, k := range keys {
		if list := recordList(rec[k]); len(list) > 0 {
			return list
		}
	}
	return nil
}
