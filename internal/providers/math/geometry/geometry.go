package geometry

import (
	"context"
	gomath "math"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/types"
	"gonum.org/v1/gonum/floats"
)

// GeometryOps handles geometric and distance operations
type GeometryOps struct {
	*common.MathOps
}

// GetTools returns geometry tool definitions
func (g *GeometryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.hypotenuse",
			Name:        "Hypotenuse",
			Description: "Calculate the hypotenuse of a right triangle from its legs",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First leg", Required: true},
				{Name: "b", Type: "number", Description: "Second leg", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.distance_2d",
			Name:        "2D Distance",
			Description: "Calculate the Euclidean distance between two points in the plane",
			Parameters: []types.Parameter{
				{Name: "x1", Type: "number", Description: "First point x", Required: true},
				{Name: "y1", Type: "number", Description: "First point y", Required: true},
				{Name: "x2", Type: "number", Description: "Second point x", Required: true},
				{Name: "y2", Type: "number", Description: "Second point y", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.distance_3d",
			Name:        "3D Distance",
			Description: "Calculate the Euclidean distance between two points in space",
			Parameters: []types.Parameter{
				{Name: "x1", Type: "number", Description: "First point x", Required: true},
				{Name: "y1", Type: "number", Description: "First point y", Required: true},
				{Name: "z1", Type: "number", Description: "First point z", Required: true},
				{Name: "x2", Type: "number", Description: "Second point x", Required: true},
				{Name: "y2", Type: "number", Description: "Second point y", Required: true},
				{Name: "z2", Type: "number", Description: "Second point z", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.manhattan_distance",
			Name:        "Manhattan Distance",
			Description: "Calculate the Manhattan (L1) distance between two n-dimensional points",
			Parameters: []types.Parameter{
				{Name: "point1", Type: "array", Description: "First point coordinates", Required: true},
				{Name: "point2", Type: "array", Description: "Second point coordinates", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.absolute_difference",
			Name:        "Absolute Difference",
			Description: "Calculate the absolute difference between two numbers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.circle_area",
			Name:        "Circle Area",
			Description: "Calculate the area of a circle from its radius",
			Parameters: []types.Parameter{
				{Name: "radius", Type: "number", Description: "Circle radius", Required: true},
			},
			Returns: "number",
		},
	}
}

// Hypotenuse calculates sqrt(a^2 + b^2) without intermediate overflow
func (g *GeometryOps) Hypotenuse(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	a, serr := common.Number(params, "a")
	if serr != nil {
		return common.Fail(serr)
	}
	b, serr := common.Number(params, "b")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(gomath.Hypot(a, b))
}

// Distance2D calculates Euclidean distance in the plane
func (g *GeometryOps) Distance2D(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	p1, p2, serr := pointPair(params, []string{"x1", "y1"}, []string{"x2", "y2"})
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(floats.Distance(p1, p2, 2))
}

// Distance3D calculates Euclidean distance in space
func (g *GeometryOps) Distance3D(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	p1, p2, serr := pointPair(params, []string{"x1", "y1", "z1"}, []string{"x2", "y2", "z2"})
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(floats.Distance(p1, p2, 2))
}

// ManhattanDistance calculates the L1 distance between two n-dimensional points
func (g *GeometryOps) ManhattanDistance(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	p1, serr := common.Numbers(params, "point1")
	if serr != nil {
		return common.Fail(serr)
	}
	p2, serr := common.Numbers(params, "point2")
	if serr != nil {
		return common.Fail(serr)
	}
	if len(p1) != len(p2) {
		return common.Failure(types.ErrDimensionMismatch, "points must have the same number of dimensions")
	}

	return common.NumberResult(floats.Distance(p1, p2, 1))
}

// AbsoluteDifference calculates |a - b|
func (g *GeometryOps) AbsoluteDifference(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	a, serr := common.Number(params, "a")
	if serr != nil {
		return common.Fail(serr)
	}
	b, serr := common.Number(params, "b")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(gomath.Abs(a - b))
}

// CircleArea calculates the area of a circle
func (g *GeometryOps) CircleArea(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	radius, serr := common.Number(params, "radius")
	if serr != nil {
		return common.Fail(serr)
	}
	if radius < 0 {
		return common.Failure(types.ErrNegativeInput, "radius cannot be negative")
	}

	return common.NumberResult(gomath.Pi * radius * radius)
}

// pointPair extracts two points from scalar coordinate parameters.
func pointPair(params map[string]interface{}, keys1, keys2 []string) ([]float64, []float64, *types.ServiceError) {
	p1 := make([]float64, len(keys1))
	for i, key := range keys1 {
		n, serr := common.Number(params, key)
		if serr != nil {
			return nil, nil, serr
		}
		p1[i] = n
	}

	p2 := make([]float64, len(keys2))
	for i, key := range keys2 {
		n, serr := common.Number(params, key)
		if serr != nil {
			return nil, nil, serr
		}
		p2[i] = n
	}

	return p1, p2, nil
}
