package state

import "math"

const (
	// INF is the cost of an unreachable destination.
	INF = math.MaxInt
	// INFM is the largest finite cost. Sums saturate here instead of wrapping into INF.
	INFM = INF - 1

	// NoHop marks a destination without a next hop.
	NoHop NodeId = -1

	// RemoveCost is the change-record cost that deletes an edge.
	RemoveCost = -999
)

var (
	DefaultOutputPath = "output.txt"

	// BTreeDegree is the branching factor of the ordered node and adjacency sets.
	BTreeDegree = 8

	// ChangeSeparator is written between snapshots, before the state that follows each change.
	ChangeSeparator = "----- At this point, change is applied"
)
