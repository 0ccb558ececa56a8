// Package numeric is the shared input normalization layer.
//
// Every operation routes caller-supplied values through these three
// primitives before any computation runs, so implementations can assume
// well-typed input. No operation performs ad-hoc coercion on its own.
//
// Coercion rules:
//   - ToNumber: native numerics and numeric strings to float64
//   - ToInteger: ToNumber plus a strict zero-fraction check (no truncation)
//   - ToNumberList: non-empty sequence, elementwise ToNumber
//
// Failures are structured (types.ServiceError) and name the offending
// element for list input.
package numeric
