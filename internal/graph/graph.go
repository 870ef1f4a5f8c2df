package graph

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMissingVertex indicates an edge endpoint that was never added to the graph.
var ErrMissingVertex = errors.New("vertex does not exist")

// MissingVertexError reports the specific vertex an edge operation referenced.
type MissingVertexError struct {
	Vertex int
}

func (e *MissingVertexError) Error() string {
	return fmt.Sprintf("vertex %d does not exist", e.Vertex)
}

// Is lets errors.Is match MissingVertexError against ErrMissingVertex.
func (e *MissingVertexError) Is(target error) bool {
	return target == ErrMissingVertex
}

// Path is an ordered sequence of vertex ids from a traversal source to its
// current vertex.
type Path []int

// Last returns the terminal vertex of p. p must not be empty.
func (p Path) Last() int {
	return p[len(p)-1]
}

// Extend returns a copy of p with v appended. p itself is left untouched so
// that sibling paths sharing a prefix never alias each other.
func (p Path) Extend(v int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = v
	return out
}

// Hops is the number of edges along p.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Graph is a directed adjacency-set graph over integer vertices. Undirected
// use requires callers to add both directions explicitly.
//
// Graph performs no synchronization; concurrent readers are safe only while
// nothing mutates it.
type Graph struct {
	adj map[int]Set[int]
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int]Set[int])}
}

// AddVertex registers id with an empty neighbor set. Adding an existing vertex
// is a no-op.
func (g *Graph) AddVertex(id int) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = NewSet[int]()
}

// AddEdge records the directed edge u->v. Both vertices must already exist.
func (g *Graph) AddEdge(u, v int) error {
	from, ok := g.adj[u]
	if !ok {
		return &MissingVertexError{Vertex: u}
	}
	if _, ok := g.adj[v]; !ok {
		return &MissingVertexError{Vertex: v}
	}
	from.Add(v)
	return nil
}

// Neighbors returns the out-neighbors of u in ascending order. Unknown or
// isolated vertices yield an empty slice.
func (g *Graph) Neighbors(u int) []int {
	set, ok := g.adj[u]
	if !ok {
		return []int{}
	}
	return Sorted(set)
}

func (g *Graph) HasVertex(id int) bool {
	_, ok := g.adj[id]
	return ok
}

func (g *Graph) HasEdge(u, v int) bool {
	set, ok := g.adj[u]
	return ok && set.Has(v)
}

// Degree is the out-degree of u, zero when u is unknown.
func (g *Graph) Degree(u int) int {
	return len(g.adj[u])
}

// Vertices lists every vertex in ascending order.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len is the number of vertices.
func (g *Graph) Len() int {
	return len(g.adj)
}
