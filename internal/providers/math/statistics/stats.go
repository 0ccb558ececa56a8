package statistics

import (
	"context"
	gomath "math"
	"sort"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/types"
	"gonum.org/v1/gonum/stat"
)

// StatsOps handles statistical operations using gonum
type StatsOps struct {
	*common.MathOps
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	dataParam := []types.Parameter{
		{Name: "data", Type: "array", Description: "List of numbers", Required: true},
	}

	return []types.Tool{
		{
			ID:          "math.mean",
			Name:        "Mean",
			Description: "Calculate the arithmetic mean of a list of numbers",
			Parameters:  dataParam,
			Returns:     "number",
		},
		{
			ID:          "math.median",
			Name:        "Median",
			Description: "Calculate the median of a list of numbers",
			Parameters:  dataParam,
			Returns:     "number",
		},
		{
			ID:          "math.stdev",
			Name:        "Standard Deviation",
			Description: "Calculate the sample standard deviation (requires at least 2 points)",
			Parameters:  dataParam,
			Returns:     "number",
		},
		{
			ID:          "math.variance",
			Name:        "Variance",
			Description: "Calculate the sample variance (requires at least 2 points)",
			Parameters:  dataParam,
			Returns:     "number",
		},
	}
}

// Mean calculates the arithmetic mean using gonum
func (s *StatsOps) Mean(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	data, serr := common.Numbers(params, "data")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(stat.Mean(data, nil))
}

// Median calculates the median. For even-length input the two middle values
// are averaged.
func (s *StatsOps) Median(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	data, serr := common.Numbers(params, "data")
	if serr != nil {
		return common.Fail(serr)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	var median float64
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return common.NumberResult(median)
}

// Stdev calculates the sample standard deviation using gonum
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	data, serr := common.Numbers(params, "data")
	if serr != nil {
		return common.Fail(serr)
	}
	if len(data) < 2 {
		return common.Failure(types.ErrInsufficientData, "standard deviation requires at least two data points")
	}

	return common.NumberResult(gomath.Sqrt(stat.Variance(data, nil)))
}

// Variance calculates the sample variance using gonum
func (s *StatsOps) Variance(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	data, serr := common.Numbers(params, "data")
	if serr != nil {
		return common.Fail(serr)
	}
	if len(data) < 2 {
		return common.Failure(types.ErrInsufficientData, "variance requires at least two data points")
	}

	return common.NumberResult(stat.Variance(data, nil))
}
