// Package math provides the catalog of stateless numeric operations.
//
// The package is organized into specialized modules:
//   - operations: arithmetic folds, roots and logarithms, number theory, trig
//   - statistics: mean, median, stdev, variance (gonum)
//   - geometry: hypotenuse, Euclidean and Manhattan distances, circle area
//   - utilities: rounding, random integers, constants
//
// Each operation follows the same contract: validate arguments through the
// shared normalizer, apply a standard numeric routine, return a single value
// or a structured error. The catalog is immutable after NewProvider and
// every descriptor's declared parameter types match what the implementation
// demands from the normalizer.
//
// Example Usage:
//
//	provider := math.NewProvider()
//	result, err := provider.Execute(ctx, "math.hypotenuse",
//		map[string]interface{}{"a": 3, "b": 4}, nil)
package math
