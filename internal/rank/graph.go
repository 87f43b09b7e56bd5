// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: docs/ARCHITECTURE § Rank Engine.
package rank

// Edge is a directed, weighted edge to another node.
type Edge[K comparable] struct {
	To     K       // Destination node
	Weight float64 // Transition weight (1 for unweighted graphs)
}

// Graph is a directed graph whose nodes keep their insertion order. Node
// identifiers may be dense indices or arbitrary comparable keys; the engine
// treats both the same way.
type Graph[K comparable] struct {
	nodes []K
	edges map[K][]Edge[K]
}

// NewGraph returns an empty graph.
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{edges: make(map[K][]Edge[K])}
}

// AddNode registers id as a node. Adding an existing node is a no-op.
func (g *Graph[K]) AddNode(id K) {
	if _, ok := g.edges[id]; ok {
		return
	}
	g.nodes = append(g.nodes, id)
	g.edges[id] = []Edge[K]{}
}

// Link adds an unweighted edge from -> to. The source becomes a node if it
// is not one already; the destination does not.
func (g *Graph[K]) Link(from, to K) {
	g.LinkWeighted(from, to, 1)
}

// LinkWeighted adds an edge from -> to carrying weight w. Repeated calls add
// parallel edges, which count once each toward the out-degree.
func (g *Graph[K]) LinkWeighted(from, to K, w float64) {
	g.AddNode(from)
	g.edges[from] = append(g.edges[from], Edge[K]{To: to, Weight: w})
}

// Nodes returns node identifiers in insertion order.
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Outgoing returns the edges leaving id, in the order they were added.
func (g *Graph[K]) Outgoing(id K) []Edge[K] {
	return g.edges[id]
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int {
	return len(g.nodes)
}

// FromAdjacency builds a graph from an array-indexed adjacency list:
// adj[i] holds the destinations of node i. Every index in [0, len(adj))
// becomes a node, even when its list is empty.
func FromAdjacency(adj [][]int) *Graph[int] {
	g := NewGraph[int]()
	for i, dests := range adj {
		g.AddNode(i)
		for _, j := range dests {
			g.Link(i, j)
		}
	}
	return g
}

// FromMap builds a graph from a keyed adjacency map. Go maps are unordered,
// so keys are taken in the order given by order; keys missing from order
// are ignored.
func FromMap[K comparable](order []K, adj map[K][]K) *Graph[K] {
	g := NewGraph[K]()
	for _, id := range order {
		g.AddNode(id)
		for _, to := range adj[id] {
			g.Link(id, to)
		}
	}
	return g
}
