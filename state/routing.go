package state

import (
	"fmt"
	"slices"
	"strings"
)

// Route is a (cost, next hop) cell of the routing state.
type Route struct {
	Nh   NodeId
	Cost int
}

func (r Route) Reachable() bool {
	return r.Cost != INF
}

func (r Route) String() string {
	if !r.Reachable() {
		return "(nh: none, cost: inf)"
	}
	return fmt.Sprintf("(nh: %d, cost: %d)", r.Nh, r.Cost)
}

// RoutingState holds the cost and next hop for every ordered pair of nodes known when it was created.
// It is produced by a single solver run and thrown away after the next topology change.
type RoutingState struct {
	ids    []NodeId
	index  map[NodeId]int
	routes [][]Route
}

// NewRoutingState returns a state where every node reaches only itself, at cost 0 through itself.
// ids must be sorted ascending and free of duplicates.
func NewRoutingState(ids []NodeId) *RoutingState {
	rs := &RoutingState{
		ids:    slices.Clone(ids),
		index:  make(map[NodeId]int, len(ids)),
		routes: make([][]Route, len(ids)),
	}
	for i, id := range rs.ids {
		rs.index[id] = i
		row := make([]Route, len(ids))
		for k := range row {
			row[k] = Route{Nh: NoHop, Cost: INF}
		}
		row[i] = Route{Nh: id, Cost: 0}
		rs.routes[i] = row
	}
	return rs
}

// Ids returns the node ids covered by the state, ascending.
func (rs *RoutingState) Ids() []NodeId {
	return rs.ids
}

func (rs *RoutingState) Len() int {
	return len(rs.ids)
}

func (rs *RoutingState) Has(id NodeId) bool {
	_, ok := rs.index[id]
	return ok
}

// Index returns the dense position of id, which solvers use to avoid map lookups in hot loops.
func (rs *RoutingState) Index(id NodeId) (int, bool) {
	i, ok := rs.index[id]
	return i, ok
}

// Route returns the route from src to dst. Unknown ids are unreachable.
func (rs *RoutingState) Route(src, dst NodeId) Route {
	i, ok := rs.index[src]
	if !ok {
		return Route{Nh: NoHop, Cost: INF}
	}
	k, ok := rs.index[dst]
	if !ok {
		return Route{Nh: NoHop, Cost: INF}
	}
	return rs.routes[i][k]
}

func (rs *RoutingState) Cost(src, dst NodeId) int {
	return rs.Route(src, dst).Cost
}

func (rs *RoutingState) NextHop(src, dst NodeId) NodeId {
	return rs.Route(src, dst).Nh
}

func (rs *RoutingState) Reachable(src, dst NodeId) bool {
	return rs.Route(src, dst).Reachable()
}

// Set overwrites the route from src to dst. Both ids must be known.
func (rs *RoutingState) Set(src, dst NodeId, route Route) {
	rs.routes[rs.index[src]][rs.index[dst]] = route
}

// Row returns the routes of src indexed like Ids. The slice is owned by the state.
func (rs *RoutingState) Row(src NodeId) []Route {
	i, ok := rs.index[src]
	if !ok {
		return nil
	}
	return rs.routes[i]
}

// RowAt is Row by dense index.
func (rs *RoutingState) RowAt(i int) []Route {
	return rs.routes[i]
}

// StringRoutes renders every reachable route, one per line, in ascending (src, dst) order.
func (rs *RoutingState) StringRoutes() string {
	out := make([]string, 0)
	for i, src := range rs.ids {
		for k, dst := range rs.ids {
			r := rs.routes[i][k]
			if r.Reachable() {
				out = append(out, fmt.Sprintf("%d -> %d via %s", src, dst, r))
			}
		}
	}
	return strings.Join(out, "\n")
}
