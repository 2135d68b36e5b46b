package core

import (
	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
)

// ApplyChange applies a single change to the topology and reports whether the topology differs afterwards.
// Routing state computed before the change is stale either way and must be solved again from scratch.
func ApplyChange(g *state.Graph, c state.Change, r Router) bool {
	perf.TopologyChanges.Add(1)

	var changed bool
	if c.IsRemoval() {
		changed = g.RemoveEdge(c.From, c.To)
	} else {
		known := g.HasNode(c.From) && g.HasNode(c.To)
		old, ok := g.EdgeCost(c.From, c.To)
		g.UpsertEdge(c.From, c.To, c.Cost)
		changed = !known || (c.From != c.To && (!ok || old != c.Cost))
	}
	r.Log(TopologyChanged, "change applied", "change", c, "changed", changed)
	return changed
}
