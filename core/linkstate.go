package core

import (
	"time"

	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
	"github.com/google/btree"
)

// LinkState computes, for every node on its own, a shortest path tree over the full topology.
// It models the routes each node would install once link-state flooding has completed.
type LinkState struct{}

func (LinkState) Name() string {
	return string(state.LinkState)
}

func (LinkState) Solve(g *state.Graph, r Router) *state.RoutingState {
	start := time.Now()
	rs := state.NewRoutingState(g.NodeIds())
	relaxations := 0
	for _, root := range rs.Ids() {
		relaxations += shortestPathTree(g, rs, root, r)
	}
	perf.SolveLatency.Add(float64(time.Since(start).Microseconds()))
	perf.Relaxations.Add(float64(relaxations))
	return rs
}

type frontierItem struct {
	cost int
	id   state.NodeId
}

func frontierLess(a, b frontierItem) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.id < b.id
}

// shortestPathTree fills the row of root with Dijkstra. On equal cost the smaller predecessor wins.
// It returns the number of edges relaxed.
func shortestPathTree(g *state.Graph, rs *state.RoutingState, root state.NodeId, r Router) int {
	row := rs.Row(root)
	pred := make([]state.NodeId, rs.Len())
	for i := range pred {
		pred[i] = state.NoHop
	}
	rootIdx, _ := rs.Index(root)
	pred[rootIdx] = root

	frontier := btree.NewG[frontierItem](state.BTreeDegree, frontierLess)
	frontier.ReplaceOrInsert(frontierItem{cost: 0, id: root})

	relaxations := 0
	for frontier.Len() > 0 {
		item, _ := frontier.DeleteMin()
		u := item.id
		ui, _ := rs.Index(u)

		for _, l := range g.Neighbours(u) {
			v := l.To
			if v == root {
				continue
			}
			relaxations++
			vi, _ := rs.Index(v)
			alt := AddCost(row[ui].Cost, l.Cost)
			cur := row[vi].Cost
			if alt < cur || (alt == cur && u < pred[vi]) {
				if cur != state.INF {
					frontier.Delete(frontierItem{cost: cur, id: v})
				}
				nh := v
				if u != root {
					nh = row[ui].Nh // inherit the first hop towards u
				}
				row[vi] = state.Route{Nh: nh, Cost: alt}
				pred[vi] = u
				frontier.ReplaceOrInsert(frontierItem{cost: alt, id: v})
				r.Log(RouteImproved, "route improved", "src", root, "dst", v, "pred", u, "route", row[vi])
			}
		}
	}
	r.Log(TreeComputed, "shortest path tree computed", "root", root)
	return relaxations
}
