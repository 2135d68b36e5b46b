package core

import (
	"testing"

	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRoutingStateAcceptsSolvedState(t *testing.T) {
	g := TriangleGraph()
	for _, s := range Solvers {
		assert.NoError(t, CheckRoutingState(g, s.Solve(g, DiscardRouter)), s.Name())
	}
}

func TestCheckRoutingStateReportsViolations(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(rs *state.RoutingState)
		want    string
	}{
		{
			name:    "self route",
			corrupt: func(rs *state.RoutingState) { rs.Set(2, 2, state.Route{Nh: 1, Cost: 0}) },
			want:    "2: self route is (nh: 1, cost: 0)",
		},
		{
			name:    "wrong cost",
			corrupt: func(rs *state.RoutingState) { rs.Set(1, 4, state.Route{Nh: 2, Cost: 4}) },
			want:    "1 -> 4: cost 4, shortest path costs 3",
		},
		{
			name:    "missing route",
			corrupt: func(rs *state.RoutingState) { rs.Set(4, 1, state.Route{Nh: state.NoHop, Cost: state.INF}) },
			want:    "4 -> 1: unreachable, shortest path costs 3",
		},
		{
			name:    "not a neighbour",
			corrupt: func(rs *state.RoutingState) { rs.Set(1, 4, state.Route{Nh: 3, Cost: 3}) },
			want:    "1 -> 4: next hop 3 is not a neighbour",
		},
		{
			name: "next hop off the shortest path",
			corrupt: func(rs *state.RoutingState) {
				rs.Set(2, 4, state.Route{Nh: 1, Cost: 2})
			},
			want: "2 -> 4: next hop 1 leads to cost 4, expected 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := LineGraph()
			rs := DistanceVector{}.Solve(g, DiscardRouter)
			tt.corrupt(rs)
			err := CheckRoutingState(g, rs)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestCheckRoutingStateRouteToUnreachable(t *testing.T) {
	g := MakeGraph(E(1, 2, 1))
	g.AddNode(3)
	rs := LinkState{}.Solve(g, DiscardRouter)
	rs.Set(1, 3, state.Route{Nh: 2, Cost: 2})
	assert.ErrorContains(t, CheckRoutingState(g, rs), "1 -> 3: route (nh: 2, cost: 2) to an unreachable destination")
}

func TestCheckRoutingStateNodeMismatch(t *testing.T) {
	g := LineGraph()
	rs := LinkState{}.Solve(g, DiscardRouter)
	g.AddNode(5)
	assert.ErrorContains(t, CheckRoutingState(g, rs), "routing state covers nodes [1 2 3 4], topology has [1 2 3 4 5]")
}

func TestCheckRoutingStateCapsReport(t *testing.T) {
	ids := make([]state.NodeId, 0)
	edges := make([]state.Edge, 0)
	for i := 1; i <= 10; i++ {
		ids = append(ids, state.NodeId(i))
		if i > 1 {
			edges = append(edges, E(state.NodeId(i-1), state.NodeId(i), 1))
		}
	}
	g := MakeGraph(edges...)
	// nothing solved, so every one of the 90 routes is missing
	err := CheckRoutingState(g, state.NewRoutingState(ids))
	assert.ErrorContains(t, err, "58 more violations not shown")
}
