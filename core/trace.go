package core

import (
	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
	"github.com/jellydator/ttlcache/v3"
)

// Trace is the delivery of one message through a routing state.
type Trace struct {
	Message   state.Message
	Reachable bool
	Cost      int            // end to end cost from the routing state, INF if unreachable
	Hops      []state.NodeId // source to destination inclusive, nil if unreachable
}

type pathKey = state.Pair[state.NodeId, state.NodeId]

// Tracer follows next hops through a routing state.
// Paths are memoised per (source, destination) until Rebase is told the topology changed.
type Tracer struct {
	rs    *state.RoutingState
	r     Router
	paths *ttlcache.Cache[pathKey, []state.NodeId]
}

func NewTracer(rs *state.RoutingState, r Router) *Tracer {
	return &Tracer{
		rs: rs,
		r:  r,
		paths: ttlcache.New[pathKey, []state.NodeId](
			ttlcache.WithDisableTouchOnHit[pathKey, []state.NodeId](),
		),
	}
}

// Rebase points the tracer at a newly solved state. Memoised paths are kept only if the
// topology is unchanged, in which case rs equals the previous state.
func (t *Tracer) Rebase(rs *state.RoutingState, changed bool) {
	t.rs = rs
	if changed {
		t.paths.DeleteAll()
	}
}

func (t *Tracer) Trace(msg state.Message) Trace {
	perf.TracedMessages.Add(1)
	hops := t.Path(msg.Src, msg.Dst)
	if hops == nil {
		perf.UnreachableMessages.Add(1)
		return Trace{Message: msg, Cost: state.INF}
	}
	return Trace{
		Message:   msg,
		Reachable: true,
		Cost:      t.rs.Cost(msg.Src, msg.Dst),
		Hops:      hops,
	}
}

// Path returns the hops from src to dst, or nil if dst cannot be reached. The slice must not be modified.
func (t *Tracer) Path(src, dst state.NodeId) []state.NodeId {
	key := pathKey{V1: src, V2: dst}
	if item := t.paths.Get(key); item != nil {
		perf.TraceCacheHits.Add(1)
		t.r.Log(TraceCached, "reusing traced path", "src", src, "dst", dst)
		return item.Value()
	}
	hops := t.walk(src, dst)
	t.paths.Set(key, hops, ttlcache.DefaultTTL)
	return hops
}

func (t *Tracer) walk(src, dst state.NodeId) []state.NodeId {
	if !t.rs.Has(src) || !t.rs.Has(dst) {
		t.r.Log(UnknownNode, "message endpoint is not in the topology", "src", src, "dst", dst)
		return nil
	}
	if !t.rs.Reachable(src, dst) {
		return nil
	}
	hops := make([]state.NodeId, 0)
	cur := src
	for cur != dst {
		// a loop-free path visits at most n nodes, the destination included
		if len(hops) >= t.rs.Len()-1 {
			t.r.Log(TraceLoop, "next hop chain does not reach the destination", "src", src, "dst", dst, "hops", hops)
			return nil
		}
		hops = append(hops, cur)
		cur = t.rs.NextHop(cur, dst)
		if cur == state.NoHop {
			t.r.Log(InconsistentState, "next hop chain ends before the destination", "src", src, "dst", dst, "hops", hops)
			return nil
		}
	}
	return append(hops, dst)
}
