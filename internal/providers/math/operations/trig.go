package operations

import (
	"context"
	gomath "math"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/types"
)

// TrigOps handles trigonometric operations
type TrigOps struct {
	*common.MathOps
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sin",
			Name:        "Sine",
			Description: "Calculate the sine of x (input in radians)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.cos",
			Name:        "Cosine",
			Description: "Calculate the cosine of x (input in radians)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.tan",
			Name:        "Tangent",
			Description: "Calculate the tangent of x (input in radians)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.degrees_to_radians",
			Name:        "Degrees to Radians",
			Description: "Convert an angle from degrees to radians",
			Parameters: []types.Parameter{
				{Name: "degrees", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.radians_to_degrees",
			Name:        "Radians to Degrees",
			Description: "Convert an angle from radians to degrees",
			Parameters: []types.Parameter{
				{Name: "radians", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
	}
}

// Sin calculates sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(gomath.Sin(x))
}

// Cos calculates cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(gomath.Cos(x))
}

// Tan calculates tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	x, serr := common.Number(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(gomath.Tan(x))
}

// DegreesToRadians converts degrees to radians
func (t *TrigOps) DegreesToRadians(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	degrees, serr := common.Number(params, "degrees")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(degrees * gomath.Pi / 180)
}

// RadiansToDegrees converts radians to degrees
func (t *TrigOps) RadiansToDegrees(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	radians, serr := common.Number(params, "radians")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(radians * 180 / gomath.Pi)
}
