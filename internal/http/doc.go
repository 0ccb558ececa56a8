// Package http provides the HTTP handlers for the tool host boundary.
//
// Endpoints:
//   - Health: / and /health
//   - Catalog: /services, /services/discover
//   - Invocation: /services/execute
//
// The handlers own no business logic: they bind requests, route calls
// through the registry, and serialize results. Operation failures travel as
// structured Result payloads; transport misuse gets 4xx.
package http
