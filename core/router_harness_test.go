package core

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/encodeous/routesim/state"
	"github.com/google/go-cmp/cmp"
)

type HarnessEvent struct {
	Event   RouterEvent
	Message string
	Args    []any
}

// RouterHarness records every event a solver or tracer logs.
type RouterHarness struct {
	events []HarnessEvent
}

func (h *RouterHarness) Log(event RouterEvent, desc string, args ...any) {
	h.events = append(h.events, HarnessEvent{
		Event:   event,
		Message: desc,
		Args:    args,
	})
}

type HarnessEvents []HarnessEvent

func (h HarnessEvents) String() string {
	out := make([]string, 0)
	for _, ev := range h {
		cur := ev.Event.String()
		for i := 0; i+1 < len(ev.Args); i += 2 {
			cur += fmt.Sprintf(" %v=%v", ev.Args[i], ev.Args[i+1])
		}
		out = append(out, cur)
	}
	slices.Sort(out)
	return strings.Join(out, "\n")
}

// GetEvents returns the recorded events of the given kinds, or all of them, and clears the recording.
func (h *RouterHarness) GetEvents(kinds ...RouterEvent) HarnessEvents {
	x := make([]HarnessEvent, 0)
	for _, ev := range h.events {
		if len(kinds) == 0 || slices.Contains(kinds, ev.Event) {
			x = append(x, ev)
		}
	}
	h.events = make([]HarnessEvent, 0)
	return x
}

func (e HarnessEvents) Count(kind RouterEvent) int {
	n := 0
	for _, ev := range e {
		if ev.Event == kind {
			n++
		}
	}
	return n
}

func (e HarnessEvents) contains(kind RouterEvent, args ...any) bool {
	for _, ev := range e {
		if ev.Event != kind || len(ev.Args) < len(args) {
			continue
		}
		match := true
		for i, arg := range args {
			if !cmp.Equal(ev.Args[i], arg) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (e HarnessEvents) AssertContains(t *testing.T, kind RouterEvent, args ...any) {
	t.Helper()
	if e.contains(kind, args...) {
		return
	}
	t.Fatal("Expected event not found: ", kind, " with args: ", args, " in ", e)
}

func (e HarnessEvents) AssertNotContains(t *testing.T, kind RouterEvent, args ...any) {
	t.Helper()
	if e.contains(kind, args...) {
		t.Fatal("Unexpected event found: ", kind, " with args: ", args, " in ", e)
	}
}

func MakeGraph(edges ...state.Edge) *state.Graph {
	return state.NewGraphFromEdges(edges)
}

func E(from, to state.NodeId, cost int) state.Edge {
	return state.Edge{From: from, To: to, Cost: cost}
}

// LineGraph is 1 - 2 - 3 - 4 with unit costs.
func LineGraph() *state.Graph {
	return MakeGraph(E(1, 2, 1), E(2, 3, 1), E(3, 4, 1))
}

// TriangleGraph is 1-2 (5), 2-3 (5), 1-3 (3).
func TriangleGraph() *state.Graph {
	return MakeGraph(E(1, 2, 5), E(2, 3, 5), E(1, 3, 3))
}

var Solvers = []Solver{DistanceVector{}, LinkState{}}
