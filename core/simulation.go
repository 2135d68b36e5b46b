package core

import (
	"fmt"

	"github.com/encodeous/routesim/state"
)

// Snapshot is the routing state and message deliveries after Index changes have been applied.
type Snapshot struct {
	Index  int
	Change *state.Change // the change that produced this snapshot, nil for the initial one
	State  *state.RoutingState
	Tables []NodeTable
	Traces []Trace
}

// Simulation replays changes against a topology, solving it from scratch before the first change and after every change.
// Run works on a copy of Graph, which is left as given.
type Simulation struct {
	Graph    *state.Graph
	Solver   Solver
	Messages []state.Message
	Changes  []state.Change
	Router   Router
	// Verify checks every routing state against an independent solver and fails the run on mismatch.
	Verify bool

	tracer *Tracer
}

func (s *Simulation) router() Router {
	if s.Router == nil {
		return DiscardRouter
	}
	return s.Router
}

// Run emits one snapshot for the initial topology and one per change, in order.
// It stops at the first error returned by emit.
func (s *Simulation) Run(emit func(Snapshot) error) error {
	g := s.Graph.Clone()
	s.tracer = nil

	snap, err := s.snapshot(g, 0, nil, true)
	if err != nil {
		return err
	}
	if err = emit(snap); err != nil {
		return err
	}
	for i := range s.Changes {
		change := s.Changes[i]
		changed := ApplyChange(g, change, s.router())
		snap, err = s.snapshot(g, i+1, &change, changed)
		if err != nil {
			return err
		}
		if err = emit(snap); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) snapshot(g *state.Graph, index int, change *state.Change, changed bool) (Snapshot, error) {
	r := s.router()
	rs := s.Solver.Solve(g, r)
	if s.Verify {
		if err := CheckRoutingState(g, rs); err != nil {
			return Snapshot{}, fmt.Errorf("%s routing state after %d changes is inconsistent: %w", s.Solver.Name(), index, err)
		}
	}

	if s.tracer == nil {
		s.tracer = NewTracer(rs, r)
	} else {
		s.tracer.Rebase(rs, changed)
	}
	traces := make([]Trace, 0, len(s.Messages))
	for _, msg := range s.Messages {
		traces = append(traces, s.tracer.Trace(msg))
	}
	return Snapshot{
		Index:  index,
		Change: change,
		State:  rs,
		Tables: ForwardingTables(rs),
		Traces: traces,
	}, nil
}
