package analytics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToFiniteNumber coerces a decoded JSON value to a finite float64. The
// backend is inconsistent about numeric fields and may send them as JSON
// numbers or as strings; missing and malformed values become the fallback.
// Applied once at the ingestion boundary so downstream arithmetic never
// re-checks types.
func ToFiniteNumber(v interface{}, fallback float64) float64 {
	var n float64
	switch t := v.(type) {
	case nil:
		return fallback
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return fallback
		}
		n = f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return fallback
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fallback
		}
		n = f
	default:
		return fallback
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// ToCount coerces like ToFiniteNumber but truncates to an integer count.
func ToCount(v interface{}) int {
	return int(ToFiniteNumber(v, 0))
}
