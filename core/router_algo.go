package core

import (
	"fmt"

	"github.com/encodeous/routesim/state"
)

// Solver computes a complete routing state from a topology.
// Implementations are independent of each other and keep no state between calls.
type Solver interface {
	Name() string
	Solve(g *state.Graph, r Router) *state.RoutingState
}

func SolverFor(algo state.Algorithm) (Solver, error) {
	switch algo {
	case state.DistanceVector:
		return DistanceVector{}, nil
	case state.LinkState:
		return LinkState{}, nil
	}
	return nil, fmt.Errorf("no solver for algorithm %q", algo)
}
