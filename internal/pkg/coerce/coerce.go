// Package coerce converts loosely typed snapshot and request values into
// numbers and booleans without ever failing. Seeding and snapshot decoding
// share these rules so a value that round-trips through JSON as a string
// still lands in the right column.
package coerce

import (
	"strconv"
	"strings"
)

// Float converts v to a float64, returning def when v is absent or not a
// number. Numeric strings are parsed; booleans map to 0/1.
func Float(v any, def float64) float64 {
	switch value := v.(type) {
	case nil:
		return def
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case uint:
		return float64(value)
	case bool:
		if value {
			return 1
		}
		return 0
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

// Int converts v to an int via Float, truncating any fraction.
func Int(v any, def int) int {
	return int(Float(v, float64(def)))
}

// Bool converts v to a bool, returning def when v is absent. The accepted
// truthy strings are "true", "1", "yes" and "y" (case-insensitive, trimmed);
// every other string is false. Non-zero numbers are true.
func Bool(v any, def bool) bool {
	switch value := v.(type) {
	case nil:
		return def
	case bool:
		return value
	case string:
		return TruthyString(value)
	case float64:
		return value != 0
	case int:
		return value != 0
	default:
		return def
	}
}

// TruthyString reports whether s is one of the accepted truthy spellings.
func TruthyString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
