package parsenode

import (
	"fmt"
	"math"
	"time"
)

// Normalize converts decoder output into the canonical tree shape used by
// Node: map[string]any for objects, []any for arrays, int64 and float64 for
// numbers. Unsigned values above math.MaxInt64 stay uint64. Decoders
// disagree on integer widths and on how they represent tables, so every
// format funnels through here.
func Normalize(value any) any {
	switch v := value.(type) {
	case nil, string, bool, int64, float64, time.Time:
		return v
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return normalizeUint(uint64(v))
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return normalizeUint(v)
	case float32:
		return float64(v)
	case *time.Time:
		if v == nil {
			return nil
		}
		return *v
	default:
		return v
	}
}

func normalizeUint(v uint64) any {
	if v > math.MaxInt64 {
		return v
	}
	return int64(v)
}
