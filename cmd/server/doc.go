// Package main is the entry point for the math tool service.
//
// The binary exposes a catalog of schema-described numeric operations over a
// REST API: callers list the catalog, then invoke operations by name with a
// parameter map.
//
// Configuration:
//   - Environment variables (12-factor)
//   - Optional YAML file via CONFIG_FILE
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
