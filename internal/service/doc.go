// Package service provides the operation catalog registry.
//
// The registry maintains the fixed set of service providers and handles
// catalog advertisement, tool discovery, and dispatch. It is populated once
// at startup and read-only afterwards.
//
// Components:
//   - Registry: central catalog, safe for concurrent reads
//   - Provider: interface implemented by operation providers
//   - Discovery with keyword relevance scoring
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(math.NewProvider())
//	result, err := registry.Execute(ctx, "math.add", params, reqCtx)
package service
