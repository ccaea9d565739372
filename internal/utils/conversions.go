package utils

import (
	"encoding/json"
	"math"
	"strconv"
)

// ToString converts a decoded JSON claim value to its string form.
// JWT payloads carry identifiers either as strings or as numbers depending
// on the backend, so both are accepted. Unsupported types yield "".
func ToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}
