// Package server wires the math tool service together.
//
// Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Populate the operation catalog
//  4. Set up HTTP routes and middleware (request ID, CORS, metrics, rate limit)
//  5. Serve until shutdown signal
package server
