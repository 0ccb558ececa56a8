package operations

import (
	"context"
	"fmt"

	"github.com/unifiedmath/server/internal/providers/math/common"
	"github.com/unifiedmath/server/internal/types"
)

// maxFactorial is the largest n whose factorial fits in int64.
const maxFactorial = 20

// NumberTheoryOps handles integer operations
type NumberTheoryOps struct {
	*common.MathOps
}

// GetTools returns number theory tool definitions
func (o *NumberTheoryOps) GetTools() []types.Tool {
	pairParams := []types.Parameter{
		{Name: "a", Type: "integer", Description: "First integer", Required: true},
		{Name: "b", Type: "integer", Description: "Second integer", Required: true},
	}

	return []types.Tool{
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "Calculate the factorial of a non-negative integer (n!)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "integer", Description: "Non-negative integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.gcd",
			Name:        "Greatest Common Divisor",
			Description: "Calculate the GCD of two integers",
			Parameters:  pairParams,
			Returns:     "integer",
		},
		{
			ID:          "math.lcm",
			Name:        "Least Common Multiple",
			Description: "Calculate the LCM of two integers",
			Parameters:  pairParams,
			Returns:     "integer",
		},
	}
}

// Factorial calculates n! for non-negative integers
func (o *NumberTheoryOps) Factorial(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	n, serr := common.Integer(params, "x")
	if serr != nil {
		return common.Fail(serr)
	}
	if n < 0 {
		return common.Failure(types.ErrNegativeInput, "factorial is not defined for negative numbers")
	}
	if n > maxFactorial {
		return common.Failure(types.ErrOutOfRange, fmt.Sprintf("factorial input must be at most %d", maxFactorial))
	}

	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}

	return common.Success(map[string]interface{}{"result": result})
}

// GCD calculates the greatest common divisor of two integers
func (o *NumberTheoryOps) GCD(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	a, serr := common.Integer(params, "a")
	if serr != nil {
		return common.Fail(serr)
	}
	b, serr := common.Integer(params, "b")
	if serr != nil {
		return common.Fail(serr)
	}

	return common.Success(map[string]interface{}{"result": gcd(a, b)})
}

// LCM calculates the least common multiple of two integers
func (o *NumberTheoryOps) LCM(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	a, serr := common.Integer(params, "a")
	if serr != nil {
		return common.Fail(serr)
	}
	b, serr := common.Integer(params, "b")
	if serr != nil {
		return common.Fail(serr)
	}

	if a == 0 || b == 0 {
		return common.Success(map[string]interface{}{"result": int64(0)})
	}

	// |a*b| / gcd(a,b), dividing first so only the final product can overflow
	quotient := abs64(a) / gcd(a, b)
	lcm := quotient * abs64(b)
	if lcm/abs64(b) != quotient {
		return common.Failure(types.ErrOutOfRange, "least common multiple exceeds integer range")
	}

	return common.Success(map[string]interface{}{"result": lcm})
}

// gcd implements the Euclidean algorithm on absolute values.
func gcd(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
