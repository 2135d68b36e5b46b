package core

import (
	"testing"

	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/assert"
)

func TestTraceFollowsNextHops(t *testing.T) {
	rs := state.NewRoutingState([]state.NodeId{1, 2, 3})
	rs.Set(1, 3, state.Route{Nh: 2, Cost: 7})
	rs.Set(2, 3, state.Route{Nh: 3, Cost: 4})

	msg := state.Message{Src: 1, Dst: 3, Payload: "over two hops"}
	tr := NewTracer(rs, DiscardRouter).Trace(msg)
	assert.Equal(t, Trace{Message: msg, Reachable: true, Cost: 7, Hops: []state.NodeId{1, 2, 3}}, tr)
}

func TestTraceToSelf(t *testing.T) {
	rs := state.NewRoutingState([]state.NodeId{1, 2})
	tr := NewTracer(rs, DiscardRouter).Trace(state.Message{Src: 2, Dst: 2, Payload: "me"})
	assert.True(t, tr.Reachable)
	assert.Equal(t, 0, tr.Cost)
	assert.Equal(t, []state.NodeId{2}, tr.Hops)
}

func TestTraceUnknownNodes(t *testing.T) {
	rs := state.NewRoutingState([]state.NodeId{1, 2})
	rs.Set(1, 2, state.Route{Nh: 2, Cost: 1})
	h := &RouterHarness{}
	tracer := NewTracer(rs, h)

	for _, msg := range []state.Message{
		{Src: 1, Dst: 9, Payload: "unknown destination"},
		{Src: 9, Dst: 1, Payload: "unknown source"},
		{Src: 9, Dst: 9, Payload: "unknown both"},
	} {
		tr := tracer.Trace(msg)
		assert.False(t, tr.Reachable, msg.Payload)
		assert.Equal(t, state.INF, tr.Cost, msg.Payload)
		assert.Nil(t, tr.Hops, msg.Payload)
	}
	events := h.GetEvents(UnknownNode)
	assert.Equal(t, 3, events.Count(UnknownNode))
	events.AssertContains(t, UnknownNode, "src", state.NodeId(1), "dst", state.NodeId(9))
}

func TestTraceRebase(t *testing.T) {
	g := LineGraph()
	h := &RouterHarness{}
	tracer := NewTracer(LinkState{}.Solve(g, DiscardRouter), h)
	msg := state.Message{Src: 1, Dst: 4}
	assert.True(t, tracer.Trace(msg).Reachable)

	// same topology, the memoised path is reused
	tracer.Rebase(LinkState{}.Solve(g, DiscardRouter), false)
	assert.Equal(t, []state.NodeId{1, 2, 3, 4}, tracer.Trace(msg).Hops)
	assert.Equal(t, 1, h.GetEvents(TraceCached).Count(TraceCached))

	// changed topology drops every memoised path
	ApplyChange(g, state.Change{From: 3, To: 4, Cost: state.RemoveCost}, DiscardRouter)
	tracer.Rebase(LinkState{}.Solve(g, DiscardRouter), true)
	tr := tracer.Trace(msg)
	assert.False(t, tr.Reachable)
	assert.Equal(t, state.INF, tr.Cost)
	assert.Equal(t, 0, h.GetEvents(TraceCached).Count(TraceCached))
}

func TestTraceDetectsLoop(t *testing.T) {
	rs := state.NewRoutingState([]state.NodeId{1, 2, 3})
	rs.Set(1, 3, state.Route{Nh: 2, Cost: 5})
	rs.Set(2, 3, state.Route{Nh: 1, Cost: 5})

	h := &RouterHarness{}
	tr := NewTracer(rs, h).Trace(state.Message{Src: 1, Dst: 3})
	assert.False(t, tr.Reachable)
	assert.Nil(t, tr.Hops)

	h.GetEvents(TraceLoop).AssertContains(t, TraceLoop, "src", state.NodeId(1), "dst", state.NodeId(3))
}

func TestTraceDetectsBrokenChain(t *testing.T) {
	rs := state.NewRoutingState([]state.NodeId{1, 2, 3})
	rs.Set(1, 3, state.Route{Nh: 2, Cost: 5})

	h := &RouterHarness{}
	tr := NewTracer(rs, h).Trace(state.Message{Src: 1, Dst: 3})
	assert.False(t, tr.Reachable)

	events := h.GetEvents()
	events.AssertContains(t, InconsistentState, "src", state.NodeId(1), "dst", state.NodeId(3), "hops", []state.NodeId{1, 2})
	events.AssertNotContains(t, TraceLoop)
}

func TestTraceReusesPaths(t *testing.T) {
	g := LineGraph()
	rs := LinkState{}.Solve(g, DiscardRouter)

	h := &RouterHarness{}
	tracer := NewTracer(rs, h)
	first := tracer.Trace(state.Message{Src: 4, Dst: 1, Payload: "a"})
	second := tracer.Trace(state.Message{Src: 4, Dst: 1, Payload: "b"})
	other := tracer.Trace(state.Message{Src: 1, Dst: 4, Payload: "c"})

	assert.Equal(t, first.Hops, second.Hops)
	assert.Equal(t, "b", second.Message.Payload)
	assert.Equal(t, []state.NodeId{4, 3, 2, 1}, first.Hops)
	assert.Equal(t, []state.NodeId{1, 2, 3, 4}, other.Hops)

	events := h.GetEvents(TraceCached)
	assert.Equal(t, 1, events.Count(TraceCached))
	events.AssertContains(t, TraceCached, "src", state.NodeId(4), "dst", state.NodeId(1))
}

func TestFormatTrace(t *testing.T) {
	msg := state.Message{Src: 1, Dst: 4, Payload: "here is a message  with spaces"}
	assert.Equal(t,
		"from 1 to 4 cost 3 hops 1 2 3 4 message here is a message  with spaces",
		FormatTrace(Trace{Message: msg, Reachable: true, Cost: 3, Hops: []state.NodeId{1, 2, 3, 4}}))
	assert.Equal(t,
		"from 1 to 4 cost infinite hops unreachable message here is a message  with spaces",
		FormatTrace(Trace{Message: msg, Cost: state.INF}))
	assert.Equal(t,
		"from 2 to 2 cost 0 hops 2 message ",
		FormatTrace(Trace{Message: state.Message{Src: 2, Dst: 2}, Reachable: true, Hops: []state.NodeId{2}}))
}
