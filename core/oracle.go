package core

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/encodeous/routesim/state"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// maxReported bounds the number of violations returned by CheckRoutingState.
const maxReported = 32

// CheckRoutingState verifies a solved routing state against the topology it was solved from.
// Costs are compared with an independent all-pairs Dijkstra, and every next hop must be a neighbour
// lying on a shortest path. All violations found are joined into the returned error.
func CheckRoutingState(g *state.Graph, rs *state.RoutingState) error {
	ids := g.NodeIds()
	if !slices.Equal(ids, rs.Ids()) {
		return fmt.Errorf("routing state covers nodes %v, topology has %v", rs.Ids(), ids)
	}

	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, id := range ids {
		ug.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return fmt.Errorf("edge %d-%d has negative cost %d", e.From, e.To, e.Cost)
		}
		ug.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: float64(e.Cost)})
	}
	shortest := path.DijkstraAllPaths(ug)

	errs := make([]error, 0)
	found := 0
	report := func(err error) {
		found++
		if found <= maxReported {
			errs = append(errs, err)
		}
	}

	for _, src := range ids {
		for _, dst := range ids {
			route := rs.Route(src, dst)
			if src == dst {
				if route.Cost != 0 || route.Nh != src {
					report(fmt.Errorf("%d: self route is %s", src, route))
				}
				continue
			}

			want := shortest.Weight(int64(src), int64(dst))
			switch {
			case math.IsInf(want, 1) && route.Reachable():
				report(fmt.Errorf("%d -> %d: route %s to an unreachable destination", src, dst, route))
				continue
			case math.IsInf(want, 1):
				continue
			case !route.Reachable():
				report(fmt.Errorf("%d -> %d: unreachable, shortest path costs %v", src, dst, want))
				continue
			case float64(route.Cost) != want:
				report(fmt.Errorf("%d -> %d: cost %d, shortest path costs %v", src, dst, route.Cost, want))
			}

			if back := rs.Cost(dst, src); back != route.Cost {
				report(fmt.Errorf("%d -> %d: cost %d differs from reverse cost %d", src, dst, route.Cost, back))
			}

			ec, ok := g.EdgeCost(src, route.Nh)
			if !ok {
				report(fmt.Errorf("%d -> %d: next hop %d is not a neighbour", src, dst, route.Nh))
				continue
			}
			if via := AddCost(ec, rs.Cost(route.Nh, dst)); via != route.Cost {
				report(fmt.Errorf("%d -> %d: next hop %d leads to cost %d, expected %d", src, dst, route.Nh, via, route.Cost))
			}
		}
	}

	if found > maxReported {
		errs = append(errs, fmt.Errorf("%d more violations not shown", found-maxReported))
	}
	return errors.Join(errs...)
}
