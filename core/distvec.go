package core

import (
	"time"

	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
)

// DistanceVector computes all routes at once with synchronous Bellman-Ford rounds.
// It models the converged result of distance-vector exchange, not the exchange itself.
type DistanceVector struct{}

func (DistanceVector) Name() string {
	return string(state.DistanceVector)
}

func (DistanceVector) Solve(g *state.Graph, r Router) *state.RoutingState {
	start := time.Now()
	ids := g.NodeIds()
	rs := state.NewRoutingState(ids)
	n := len(ids)

	// seed direct neighbours, and keep the adjacency by dense index
	adj := make([][]int, n)
	for i, id := range ids {
		row := rs.RowAt(i)
		for _, l := range g.Neighbours(id) {
			j, _ := rs.Index(l.To)
			adj[i] = append(adj[i], j)
			row[j] = state.Route{Nh: l.To, Cost: l.Cost}
		}
	}

	rounds := 0
	relaxations := 0
	// a simple path has at most n-1 edges, so n-1 rounds always suffice
	for updated := true; updated && rounds < n-1; rounds++ {
		updated = false
		changes := 0
		for i := range n {
			ri := rs.RowAt(i)
			for _, j := range adj[i] {
				if ri[j].Cost == state.INF {
					continue
				}
				rj := rs.RowAt(j)
				for k := range n {
					if k == i {
						continue // the self route is fixed
					}
					relaxations++
					alt := AddCost(ri[j].Cost, rj[k].Cost)
					if alt < ri[k].Cost {
						ri[k] = state.Route{Nh: ri[j].Nh, Cost: alt}
						r.Log(RouteImproved, "route improved", "src", ids[i], "dst", ids[k], "via", ids[j], "route", ri[k])
						updated = true
						changes++
					} else if alt == ri[k].Cost && ri[j].Nh != state.NoHop && ri[j].Nh < ri[k].Nh {
						// equal cost, the smaller next hop wins
						r.Log(RouteTieBroken, "equal cost route with smaller next hop", "src", ids[i], "dst", ids[k], "old", ri[k].Nh, "new", ri[j].Nh)
						ri[k].Nh = ri[j].Nh
						updated = true
						changes++
					}
				}
			}
		}
		r.Log(RoundCompleted, "round completed", "round", rounds, "changes", changes)
	}
	r.Log(Converged, "distance vector converged", "nodes", n, "rounds", rounds)

	perf.SolveLatency.Add(float64(time.Since(start).Microseconds()))
	perf.DvRounds.Add(float64(rounds))
	perf.Relaxations.Add(float64(relaxations))
	return rs
}
