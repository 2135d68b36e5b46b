package core

import (
	"github.com/encodeous/routesim/state"
)

// ForwardEntry is one row of a forwarding table.
type ForwardEntry struct {
	Dst  state.NodeId
	Nh   state.NodeId
	Cost int
}

// NodeTable is the forwarding table of a single node.
type NodeTable struct {
	Id      state.NodeId
	Entries []ForwardEntry
}

// ForwardingTable lists every reachable destination of id, ascending by destination, the self route included.
func ForwardingTable(rs *state.RoutingState, id state.NodeId) []ForwardEntry {
	row := rs.Row(id)
	out := make([]ForwardEntry, 0, len(row))
	// rows are indexed by the ascending id list, so no sort is needed
	for k, dst := range rs.Ids() {
		if row[k].Reachable() {
			out = append(out, ForwardEntry{Dst: dst, Nh: row[k].Nh, Cost: row[k].Cost})
		}
	}
	return out
}

// ForwardingTables returns the table of every node, ascending by node id.
func ForwardingTables(rs *state.RoutingState) []NodeTable {
	out := make([]NodeTable, 0, rs.Len())
	for _, id := range rs.Ids() {
		out = append(out, NodeTable{Id: id, Entries: ForwardingTable(rs, id)})
	}
	return out
}
