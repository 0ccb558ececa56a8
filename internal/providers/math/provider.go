package math

import (
	"context"
	"fmt"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/providers/math/geometry"
	"github.com/unifiedmath/server/internal/providers/math/operations"
	"github.com/unifiedmath/server/internal/providers/math/statistics"
	"github.com/unifiedmath/server/internal/providers/math/utilities"
	"github.com/unifiedmath/server/internal/types"
)

// Provider implements the mathematical operation catalog
type Provider struct {
	// Module instances
	arithmetic   *operations.ArithmeticOps
	advanced     *operations.AdvancedOps
	numberTheory *operations.NumberTheoryOps
	trig         *operations.TrigOps
	stats        *statistics.StatsOps
	geometry     *geometry.GeometryOps
	utilities    *utilities.UtilityOps
}

// NewProvider creates a modular math provider
func NewProvider() *Provider {
	ops := &common.MathOps{}

	return &Provider{
		arithmetic:   &operations.ArithmeticOps{MathOps: ops},
		advanced:     &operations.AdvancedOps{MathOps: ops},
		numberTheory: &operations.NumberTheoryOps{MathOps: ops},
		trig:         &operations.TrigOps{MathOps: ops},
		stats:        &statistics.StatsOps{MathOps: ops},
		geometry:     &geometry.GeometryOps{MathOps: ops},
		utilities:    &utilities.UtilityOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.advanced.GetTools()...)
	tools = append(tools, m.numberTheory.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.geometry.GetTools()...)
	tools = append(tools, m.utilities.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Mathematical operations (arithmetic, trigonometry, statistics, geometry, number theory)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"advanced",
			"number_theory",
			"trigonometry",
			"statistics",
			"geometry",
			"utilities",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "math.add":
		return m.arithmetic.Add(ctx, params, reqCtx)
	case "math.multiply":
		return m.arithmetic.Multiply(ctx, params, reqCtx)
	case "math.subtract":
		return m.arithmetic.Subtract(ctx, params, reqCtx)
	case "math.divide", "math.divide_multiple":
		return m.arithmetic.Divide(ctx, params, reqCtx)
	case "math.modulo":
		return m.arithmetic.Modulo(ctx, params, reqCtx)
	case "math.power":
		return m.arithmetic.Power(ctx, params, reqCtx)

	// Advanced math
	case "math.sqrt":
		return m.advanced.Sqrt(ctx, params, reqCtx)
	case "math.log":
		return m.advanced.Log(ctx, params, reqCtx)
	case "math.log10":
		return m.advanced.Log10(ctx, params, reqCtx)

	// Number theory
	case "math.factorial":
		return m.numberTheory.Factorial(ctx, params, reqCtx)
	case "math.gcd":
		return m.numberTheory.GCD(ctx, params, reqCtx)
	case "math.lcm":
		return m.numberTheory.LCM(ctx, params, reqCtx)

	// Trigonometry
	case "math.sin":
		return m.trig.Sin(ctx, params, reqCtx)
	case "math.cos":
		return m.trig.Cos(ctx, params, reqCtx)
	case "math.tan":
		return m.trig.Tan(ctx, params, reqCtx)
	case "math.degrees_to_radians":
		return m.trig.DegreesToRadians(ctx, params, reqCtx)
	case "math.radians_to_degrees":
		return m.trig.RadiansToDegrees(ctx, params, reqCtx)

	// Statistics
	case "math.mean":
		return m.stats.Mean(ctx, params, reqCtx)
	case "math.median":
		return m.stats.Median(ctx, params, reqCtx)
	case "math.stdev":
		return m.stats.Stdev(ctx, params, reqCtx)
	case "math.variance":
		return m.stats.Variance(ctx, params, reqCtx)

	// Geometry and distances
	case "math.hypotenuse":
		return m.geometry.Hypotenuse(ctx, params, reqCtx)
	case "math.distance_2d":
		return m.geometry.Distance2D(ctx, params, reqCtx)
	case "math.distance_3d":
		return m.geometry.Distance3D(ctx, params, reqCtx)
	case "math.manhattan_distance":
		return m.geometry.ManhattanDistance(ctx, params, reqCtx)
	case "math.absolute_difference":
		return m.geometry.AbsoluteDifference(ctx, params, reqCtx)
	case "math.circle_area":
		return m.geometry.CircleArea(ctx, params, reqCtx)

	// Utilities
	case "math.abs_val":
		return m.utilities.AbsVal(ctx, params, reqCtx)
	case "math.floor":
		return m.utilities.Floor(ctx, params, reqCtx)
	case "math.ceil":
		return m.utilities.Ceil(ctx, params, reqCtx)
	case "math.round_num":
		return m.utilities.RoundNum(ctx, params, reqCtx)
	case "math.random_int":
		return m.utilities.RandomInt(ctx, params, reqCtx)
	case "math.get_pi":
		return m.utilities.GetPi(ctx, params, reqCtx)
	case "math.get_e":
		return m.utilities.GetE(ctx, params, reqCtx)

	default:
		return common.Failure(types.ErrUnknownTool, fmt.Sprintf("unknown tool: %s", toolID))
	}
}
