// Package types defines the shared data structures for the math tool service.
//
// Core types:
//   - Service: a provider definition with its advertised tool catalog
//   - Tool: a single operation descriptor (name, parameters, return type)
//   - Parameter: name, semantic type, required flag, optional default
//   - Result: success value or structured error, one per call
//   - ServiceError: error kind + human-readable message
//
// Operation descriptors are created once when the catalog is populated and
// never mutated afterwards.
package types
