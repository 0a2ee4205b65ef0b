package league

import (
	"strconv"
	"strings"
)

// Snapshot metadata and settings objects are decoded as loose maps because
// Sleeper populates them inconsistently per league. All "might be missing"
// access goes through these helpers so the defensive logic lives in one
// place instead of being scattered across callers.

// StringField returns the first non-empty string under keys in m, coercing
// numeric values to their decimal form. A nil map or missing keys yield "".
func StringField(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if s := coerceString(v); s != "" {
			return s
		}
	}
	return ""
}

// NumberField returns the numeric value under key in m, accepting numbers
// and numeric strings. Anything else yields zero.
func NumberField(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// IntField is NumberField truncated to an int.
func IntField(m map[string]any, key string) int {
	return int(NumberField(m, key))
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
