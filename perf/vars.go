package perf

import (
	"expvar"

	"github.com/encodeous/metric"
)

var (
	SolveLatency        = metric.NewHistogram("1h1m")
	DvRounds            = metric.NewHistogram("1h1m")
	Relaxations         = metric.NewCounter("1h1m")
	TopologyChanges     = metric.NewCounter("1h1m")
	TracedMessages      = metric.NewCounter("1h1m")
	UnreachableMessages = metric.NewCounter("1h1m")
	TraceCacheHits      = metric.NewCounter("1h1m")
)

func init() {
	expvar.Publish("routesim:SolveLatency (µs)", SolveLatency)
	expvar.Publish("routesim:DvRounds", DvRounds)
	expvar.Publish("routesim:Relaxations", Relaxations)
	expvar.Publish("routesim:TopologyChanges", TopologyChanges)
	expvar.Publish("routesim:TracedMessages", TracedMessages)
	expvar.Publish("routesim:UnreachableMessages", UnreachableMessages)
	expvar.Publish("routesim:TraceCacheHits", TraceCacheHits)
}

// Summary returns the current metrics as alternating keys and values, ready for a slog call.
func Summary() []any {
	return []any{
		"solve_latency_us", SolveLatency.String(),
		"dv_rounds", DvRounds.String(),
		"relaxations", Relaxations.String(),
		"topology_changes", TopologyChanges.String(),
		"traced", TracedMessages.String(),
		"unreachable", UnreachableMessages.String(),
		"trace_cache_hits", TraceCacheHits.String(),
	}
}
