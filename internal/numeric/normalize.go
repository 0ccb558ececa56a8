package numeric

import (
	"encoding/json"
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"github.com/unifiedmath/server/internal/types"
)

// ToNumber coerces a caller-supplied value into a float64.
//
// Accepts native numeric types, json.Number, and strings containing a
// numeric literal (surrounding whitespace is trimmed). Non-finite values are
// rejected: they cannot survive a JSON round-trip.
func ToNumber(value interface{}) (float64, *types.ServiceError) {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, types.NewError(types.ErrInvalidNumber, fmt.Sprintf("invalid number: %s", v.String()))
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, types.NewError(types.ErrInvalidNumber, fmt.Sprintf("invalid number: %q", v))
		}
		n = parsed
	default:
		return 0, types.NewError(types.ErrInvalidNumber, fmt.Sprintf("invalid number: %v", value))
	}

	if gomath.IsNaN(n) || gomath.IsInf(n, 0) {
		return 0, types.NewError(types.ErrInvalidNumber, "value must be finite")
	}
	return n, nil
}

// ToInteger coerces a value via ToNumber and requires a zero fractional
// part. A caller passing 3.0 gets 3; passing 3.5 fails. Truncation is never
// applied.
func ToInteger(value interface{}) (int64, *types.ServiceError) {
	n, serr := ToNumber(value)
	if serr != nil {
		return 0, serr
	}
	if n != gomath.Trunc(n) {
		return 0, types.NewError(types.ErrNotAnInteger, fmt.Sprintf("expected integer, got %v", n))
	}
	// MaxInt64 rounds up to 2^63 when converted to float64, so the upper
	// bound must exclude 2^63 itself. MinInt64 is exactly representable.
	if n >= 9223372036854775808.0 || n < gomath.MinInt64 {
		return 0, types.NewError(types.ErrOutOfRange, fmt.Sprintf("integer out of range: %v", n))
	}
	return int64(n), nil
}

// ToNumberList coerces a sequence into a non-empty []float64, applying
// ToNumber elementwise and propagating the first failure.
func ToNumberList(value interface{}) ([]float64, *types.ServiceError) {
	var raw []interface{}
	switch v := value.(type) {
	case []interface{}:
		raw = v
	case []float64:
		if len(v) == 0 {
			return nil, types.NewError(types.ErrEmptyInput, "input list cannot be empty")
		}
		out := make([]float64, len(v))
		copy(out, v)
		return out, nil
	case nil:
		return nil, types.NewError(types.ErrEmptyInput, "input list cannot be empty")
	default:
		return nil, types.NewError(types.ErrInvalidNumber, fmt.Sprintf("expected list of numbers, got %T", value))
	}

	if len(raw) == 0 {
		return nil, types.NewError(types.ErrEmptyInput, "input list cannot be empty")
	}

	numbers := make([]float64, 0, len(raw))
	for i, v := range raw {
		n, serr := ToNumber(v)
		if serr != nil {
			return nil, types.NewError(serr.Kind, fmt.Sprintf("element %d: %s", i, serr.Message))
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
