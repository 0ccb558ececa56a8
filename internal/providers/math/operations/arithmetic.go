package operations

import (
	"context"
	gomath "math"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/types"
	"gonum.org/v1/gonum/floats"
)

// ArithmeticOps handles basic arithmetic operations
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	numbersParam := []types.Parameter{
		{Name: "numbers", Type: "array", Description: "Numbers to operate on", Required: true},
	}

	return []types.Tool{
		{
			ID:          "math.add",
			Name:        "Add",
			Description: "Add a list of numbers",
			Parameters:  numbersParam,
			Returns:     "number",
		},
		{
			ID:          "math.multiply",
			Name:        "Multiply",
			Description: "Multiply a list of numbers",
			Parameters:  numbersParam,
			Returns:     "number",
		},
		{
			ID:          "math.subtract",
			Name:        "Subtract",
			Description: "Subtract numbers sequentially: a - b - c ...",
			Parameters:  numbersParam,
			Returns:     "number",
		},
		{
			ID:          "math.divide",
			Name:        "Divide",
			Description: "Divide numbers sequentially: a / b / c ...",
			Parameters:  numbersParam,
			Returns:     "number",
		},
		{
			ID:          "math.divide_multiple",
			Name:        "Divide Multiple",
			Description: "Divide numbers sequentially: a / b / c ...",
			Parameters:  numbersParam,
			Returns:     "number",
		},
		{
			ID:          "math.modulo",
			Name:        "Modulo",
			Description: "Calculate the remainder of division (a % b)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Dividend", Required: true},
				{Name: "b", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise base to the power of exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
	}
}

// Add sums a list of numbers
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	numbers, serr := common.Numbers(params, "numbers")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(floats.Sum(numbers))
}

// Multiply multiplies a list of numbers
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	numbers, serr := common.Numbers(params, "numbers")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(floats.Prod(numbers))
}

// Subtract folds a list left-to-right: a - b - c ...
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	numbers, serr := common.Numbers(params, "numbers")
	if serr != nil {
		return common.Fail(serr)
	}

	result := numbers[0]
	for _, n := range numbers[1:] {
		result -= n
	}

	return common.NumberResult(result)
}

// Divide folds a list left-to-right: a / b / c ...
// Any zero past the first element fails; a leading zero is a valid dividend.
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	numbers, serr := common.Numbers(params, "numbers")
	if serr != nil {
		return common.Fail(serr)
	}

	result := numbers[0]
	for _, n := range numbers[1:] {
		if n == 0 {
			return common.Failure(types.ErrDivisionByZero, "division by zero")
		}
		result /= n
	}

	return common.NumberResult(result)
}

// Modulo calculates the remainder of a / b
func (a *ArithmeticOps) Modulo(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	valA, serr := common.Number(params, "a")
	if serr != nil {
		return common.Fail(serr)
	}
	valB, serr := common.Number(params, "b")
	if serr != nil {
		return common.Fail(serr)
	}
	if valB == 0 {
		return common.Failure(types.ErrDivisionByZero, "division by zero")
	}

	return common.NumberResult(gomath.Mod(valA, valB))
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	base, serr := common.Number(params, "base")
	if serr != nil {
		return common.Fail(serr)
	}
	exponent, serr := common.Number(params, "exponent")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.NumberResult(gomath.Pow(base, exponent))
}
