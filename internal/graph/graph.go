// Package graph holds the undirected topology of a frame: one vertex per node
// identifier, one edge per element. It answers reachability questions
// without recursion so deep structures cannot exhaust the goroutine stack.
package graph

import "sort"

// Graph is an undirected adjacency structure over integer vertex IDs.
// Parallel edges are collapsed; self-loops are ignored.
type Graph struct {
	adj map[int]map[int]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// AddVertex inserts id if it is not already present.
func (g *Graph) AddVertex(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]struct{})
	}
}

// AddEdge connects a and b, adding either vertex if missing.
func (g *Graph) AddEdge(a, b int) {
	g.AddVertex(a)
	g.AddVertex(b)
	if a == b {
		return
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// RemoveEdge disconnects a and b. Missing vertices are ignored.
func (g *Graph) RemoveEdge(a, b int) {
	if n, ok := g.adj[a]; ok {
		delete(n, b)
	}
	if n, ok := g.adj[b]; ok {
		delete(n, a)
	}
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Vertices returns the vertex IDs in ascending order.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Neighbors returns the vertices adjacent to id in ascending order.
func (g *Graph) Neighbors(id int) []int {
	n := g.adj[id]
	out := make([]int, 0, len(n))
	for v := range n {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Reachable returns every vertex reachable from start, start included, in
// the order a depth-first walk with an explicit stack visits them. A start
// vertex that is not in the graph yields nil.
func (g *Graph) Reachable(start int) []int {
	if !g.HasVertex(start) {
		return nil
	}
	visited := map[int]bool{start: true}
	order := []int{}
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)

		nbrs := g.Neighbors(u)
		// push in reverse so the smallest neighbor is visited first
		for i := len(nbrs) - 1; i >= 0; i-- {
			v := nbrs[i]
			if !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}
	return order
}

// IsConnected reports whether every vertex is reachable from the smallest
// one. An empty graph is considered connected.
func (g *Graph) IsConnected() bool {
	if len(g.adj) == 0 {
		return true
	}
	return len(g.Reachable(g.Vertices()[0])) == len(g.adj)
}

// Components partitions the vertices into connected components. Each
// component is sorted ascending and components are ordered by their
// smallest vertex.
func (g *Graph) Components() [][]int {
	seen := make(map[int]bool, len(g.adj))
	var comps [][]int
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		comp := g.Reachable(id)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
