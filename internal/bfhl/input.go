package bfhl

import (
	"encoding/json"
	"math"
	"math/big"
)

// asInt reports whether v is an integral JSON number that fits in int64.
// 5 and 5.0 are integers; 5.5, "5", true and null are not.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, _, err := big.ParseFloat(string(n), 10, 256, big.ToNearestEven)
		if err != nil || !f.IsInt() {
			return 0, false
		}
		i, acc := f.Int64()
		return i, acc == big.Exact
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) || n != math.Trunc(n) {
			return 0, false
		}
		if n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// asIntSlice accepts a JSON array whose every element is an integer.
func asIntSlice(v any) ([]int64, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]int64, 0, len(arr))
	for _, el := range arr {
		n, ok := asInt(el)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
