package state

import "github.com/google/btree"

type NodeId int

// Link is one direction of an undirected edge, as seen from the node that owns it.
type Link struct {
	To   NodeId
	Cost int
}

type Edge struct {
	From NodeId
	To   NodeId
	Cost int
}

// Graph is the network topology.
// Every edge is stored as two Links carrying the same cost, and both are always written together.
// Node ids and adjacencies are kept in ordered sets, so all traversal is ascending by id.
type Graph struct {
	nodes *btree.BTreeG[NodeId]
	adj   map[NodeId]*btree.BTreeG[Link]
}

func linkLess(a, b Link) bool {
	return a.To < b.To
}

func NewGraph() *Graph {
	return &Graph{
		nodes: btree.NewG[NodeId](BTreeDegree, btree.Less[NodeId]()),
		adj:   make(map[NodeId]*btree.BTreeG[Link]),
	}
}

// NewGraphFromEdges builds a graph by upserting every edge in order, later edges overriding earlier ones.
func NewGraphFromEdges(edges []Edge) *Graph {
	g := NewGraph()
	for _, e := range edges {
		g.UpsertEdge(e.From, e.To, e.Cost)
	}
	return g
}

// AddNode registers a node without any edges. It is a no-op for known nodes.
func (g *Graph) AddNode(id NodeId) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.nodes.ReplaceOrInsert(id)
	g.adj[id] = btree.NewG[Link](BTreeDegree, linkLess)
}

// UpsertEdge sets the cost of the edge a-b in both directions, creating either endpoint if needed.
// A self-loop only registers the node, the cost of reaching yourself is always 0.
func (g *Graph) UpsertEdge(a, b NodeId, cost int) {
	g.AddNode(a)
	g.AddNode(b)
	if a == b {
		return
	}
	g.adj[a].ReplaceOrInsert(Link{To: b, Cost: cost})
	g.adj[b].ReplaceOrInsert(Link{To: a, Cost: cost})
}

// RemoveEdge deletes the edge a-b in both directions and reports whether it existed.
// Removing an unknown edge does nothing, and never creates nodes.
func (g *Graph) RemoveEdge(a, b NodeId) bool {
	la, ok := g.adj[a]
	if !ok {
		return false
	}
	if _, found := la.Delete(Link{To: b}); !found {
		return false
	}
	g.adj[b].Delete(Link{To: a})
	return true
}

// Neighbours returns the adjacency of id in ascending neighbour order, empty for unknown or isolated nodes.
func (g *Graph) Neighbours(id NodeId) []Link {
	la, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]Link, 0, la.Len())
	la.Ascend(func(l Link) bool {
		out = append(out, l)
		return true
	})
	return out
}

func (g *Graph) EdgeCost(a, b NodeId) (int, bool) {
	la, ok := g.adj[a]
	if !ok {
		return 0, false
	}
	l, found := la.Get(Link{To: b})
	return l.Cost, found
}

func (g *Graph) HasNode(id NodeId) bool {
	_, ok := g.adj[id]
	return ok
}

// NodeIds returns every known node id in ascending order.
func (g *Graph) NodeIds() []NodeId {
	out := make([]NodeId, 0, g.nodes.Len())
	g.nodes.Ascend(func(id NodeId) bool {
		out = append(out, id)
		return true
	})
	return out
}

func (g *Graph) Len() int {
	return g.nodes.Len()
}

// Edges lists each undirected edge once, with From < To, ordered by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0)
	g.nodes.Ascend(func(id NodeId) bool {
		g.adj[id].AscendGreaterOrEqual(Link{To: id + 1}, func(l Link) bool {
			out = append(out, Edge{From: id, To: l.To, Cost: l.Cost})
			return true
		})
		return true
	})
	return out
}

// Clone returns an independent copy. The underlying trees are copied lazily.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: g.nodes.Clone(),
		adj:   make(map[NodeId]*btree.BTreeG[Link], len(g.adj)),
	}
	for id, la := range g.adj {
		c.adj[id] = la.Clone()
	}
	return c
}
