package utilities

import (
	"context"
	gomath "math"
	"math/rand/v2"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/types"
)

// UtilityOps handles rounding, random generation, and constants
type UtilityOps struct {
	*common.MathOps
}

// GetTools returns utility tool definitions
func (u *UtilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.abs_val",
			Name:        "Absolute Value",
			Description: "Calculate the absolute value of x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.floor",
			Name:        "Floor",
			Description: "Round a number down to the nearest integer",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.ceil",
			Name:        "Ceiling",
			Description: "Round a number up to the nearest integer",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.round_num",
			Name:        "Round",
			Description: "Round to a number of decimal digits using round-half-to-even",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
				{Name: "digits", Type: "integer", Description: "Decimal digits", Required: false, Default: 0},
			},
			Returns: "number",
		},
		{
			ID:          "math.random_int",
			Name:        "Random Integer",
			Description: "Generate a random integer between min_val and max_val (inclusive)",
			Parameters: []types.Parameter{
				{Name: "min_val", Type: "integer", Description: "Lower bound (inclusive)", Required: true},
				{Name: "max_val", Type: "integer", Description: "Upper bound (inclusive)", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.get_pi",
			Name:        "Pi",
			Description: "Get the value of π",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.get_e",
			Name:        "Euler's Number",
			Description: "Get the value of e",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
	}
}

// AbsVal calculates absolute value
func (u *UtilityOps) AbsVal(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(gomath.Abs(x))
}

// Floor rounds down to the nearest integer
func (u *UtilityOps) Floor(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}

	return integerResult(gomath.Floor(x))
}

// Ceil rounds up to the nearest integer
func (u *UtilityOps) Ceil(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}

	return integerResult(gomath.Ceil(x))
}

// RoundNum rounds to a number of decimal digits. Halfway cases round to the
// nearest even value, so round_num(2.5, 0) == 2.
func (u *UtilityOps) RoundNum(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}
	digits, serr := common.IntegerDefault(params, "digits", 0)
	if serr != nil {
		return common.Fail(serr)
	}

	scale := gomath.Pow(10, float64(digits))

	return common.NumberResult(gomath.RoundToEven(x*scale) / scale)
}

// RandomInt generates a random integer in [min_val, max_val]. The top-level
// math/rand/v2 generator is safe for concurrent use.
func (u *UtilityOps) RandomInt(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	minVal, serr := common.Integer(params, "min_val")
	if serr != nil {
		return common.Fail(serr)
	}
	maxVal, serr := common.Integer(params, "max_val")
	if serr != nil {
		return common.Fail(serr)
	}
	if minVal > maxVal {
		return common.Failure(types.ErrInvalidRange, "min_val must not exceed max_val")
	}

	result := minVal + rand.Int64N(maxVal-minVal+1)

	return common.Success(map[string]interface{}{"result": result})
}

// integerResult converts a rounded float to an int64 result, failing when
// the value cannot be represented. 2^63 is the first float64 past MaxInt64.
func integerResult(x float64) (*types.Result, error) {
	if x >= 9223372036854775808.0 || x < gomath.MinInt64 {
		return common.Failure(types.ErrOutOfRange, "result exceeds integer range")
	}
	return common.Success(map[string]interface{}{"result": int64(x)})
}

// GetPi returns π
func (u *UtilityOps) GetPi(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.Pi})
}

// GetE returns e
func (u *UtilityOps) GetE(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.E})
}
