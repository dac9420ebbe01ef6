// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Inbound update counts by subscription kind
//   - Decode error and connect failure counts
//   - Currently open subscription connections
//
// StartServer exposes them over HTTP together with a /healthz endpoint.
package metrics
