// Package orchestrator exposes the five public path-computation entry
// points — Direct, PPO, MultiPPO, ForwardPath, OptimalCheck — each
// combining cable filtering, point resolution, and multi-leg composition
// into a single call. It is the only layer that logs (structurally, via
// go.uber.org/zap) and the only layer that assigns a request ID (via
// github.com/google/uuid); every package underneath stays log-free so a
// library consumer embedding just the core never inherits log output it
// didn't ask for.
package orchestrator
