// Package result defines the orchestrator's public output shape:
// PathResult and its per-leg breakdown, plus the request metadata
// attached for observability.
package result
