package common

import (
	"fmt"
	gomath "math"

	"github.com/unifiedmath/server/internal/numeric"
	"github.com/unifiedmath/server/internal/types"
)

// MathOps provides common helpers shared by all operation modules
type MathOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// NumberResult wraps a computed value as a successful result, rejecting
// non-finite values that cannot round-trip through the wire encoding
func NumberResult(x float64) (*types.Result, error) {
	if gomath.IsNaN(x) || gomath.IsInf(x, 0) {
		return Failure(types.ErrOutOfRange, "result is not a finite number")
	}
	return Success(map[string]interface{}{"result": x})
}

// Failure creates a failed result with a structured error
func Failure(kind types.ErrorKind, message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: types.NewError(kind, message)}, nil
}

// Fail wraps a normalization error into a failed result
func Fail(serr *types.ServiceError) (*types.Result, error) {
	return &types.Result{Success: false, Error: serr}, nil
}

// Number extracts and normalizes a required float parameter
func Number(params map[string]interface{}, key string) (float64, *types.ServiceError) {
	val, ok := params[key]
	if !ok {
		return 0, types.NewError(types.ErrInvalidNumber, fmt.Sprintf("%s parameter required", key))
	}
	n, serr := numeric.ToNumber(val)
	if serr != nil {
		return 0, types.NewError(serr.Kind, fmt.Sprintf("%s: %s", key, serr.Message))
	}
	return n, nil
}

// NumberDefault extracts a float parameter, falling back to the declared
// default when the key is absent
func NumberDefault(params map[string]interface{}, key string, def float64) (float64, *types.ServiceError) {
	if _, ok := params[key]; !ok {
		return def, nil
	}
	return Number(params, key)
}

// Integer extracts a required integer-valued parameter
func Integer(params map[string]interface{}, key string) (int64, *types.ServiceError) {
	val, ok := params[key]
	if !ok {
		return 0, types.NewError(types.ErrInvalidNumber, fmt.Sprintf("%s parameter required", key))
	}
	n, serr := numeric.ToInteger(val)
	if serr != nil {
		return 0, types.NewError(serr.Kind, fmt.Sprintf("%s: %s", key, serr.Message))
	}
	return n, nil
}

// IntegerDefault extracts an integer parameter with a default
func IntegerDefault(params map[string]interface{}, key string, def int64) (int64, *types.ServiceError) {
	if _, ok := params[key]; !ok {
		return def, nil
	}
	return Integer(params, key)
}

// Numbers extracts and normalizes a required non-empty list parameter
func Numbers(params map[string]interface{}, key string) ([]float64, *types.ServiceError) {
	val, ok := params[key]
	if !ok {
		return nil, types.NewError(types.ErrEmptyInput, fmt.Sprintf("%s parameter required", key))
	}
	nums, serr := numeric.ToNumberList(val)
	if serr != nil {
		return nil, types.NewError(serr.Kind, fmt.Sprintf("%s: %s", key, serr.Message))
	}
	return nums, nil
}
