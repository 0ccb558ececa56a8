package operations

import (
	"context"
	gomath "math"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/types"
)

// AdvancedOps handles roots and logarithms
type AdvancedOps struct {
	*common.MathOps
}

// GetTools returns advanced math tool definitions
func (o *AdvancedOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sqrt",
			Name:        "Square Root",
			Description: "Calculate the square root of a non-negative number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.log",
			Name:        "Logarithm",
			Description: "Calculate the logarithm of x with a configurable base (defaults to natural log)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
				{Name: "base", Type: "number", Description: "Logarithm base", Required: false, Default: gomath.E},
			},
			Returns: "number",
		},
		{
			ID:          "math.log10",
			Name:        "Base-10 Logarithm",
			Description: "Calculate the base-10 logarithm of x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
	}
}

// Sqrt calculates a square root
func (o *AdvancedOps) Sqrt(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}
	if x < 0 {
		return common.Failure(types.ErrNegativeInput, "cannot calculate square root of a negative number")
	}

	return common.NumberResult(gomath.Sqrt(x))
}

// Log calculates log base b of x, defaulting to the natural log
func (o *AdvancedOps) Log(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}
	base, serr := common.NumberDefault(params, "base", gomath.E)
	if serr != nil {
		return common.Fail(serr)
	}
	if x <= 0 {
		return common.Failure(types.ErrNonPositiveInput, "logarithm input must be positive")
	}
	if base <= 0 {
		return common.Failure(types.ErrNonPositiveInput, "logarithm base must be positive")
	}
	if base == 1 {
		return common.Failure(types.ErrDivisionByZero, "logarithm base cannot be 1")
	}

	return common.NumberResult(gomath.Log(x) / gomath.Log(base))
}

// Log10 calculates the base-10 logarithm
func (o *AdvancedOps) Log10(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}
	if x <= 0 {
		return common.Failure(types.ErrNonPositiveInput, "logarithm input must be positive")
	}

	return common.NumberResult(gomath.Log10(x))
}
