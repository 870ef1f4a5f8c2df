// Package ancestry finds the earliest known ancestor of a person in a family
// tree described by parent/child pairs.
package ancestry

import (
	"slices"

	"github.com/vanshika/kinship/internal/domain"
	"github.com/vanshika/kinship/internal/graph"
)

// NoAncestor is what the command line prints when a person has no recorded
// parents. Library callers get an explicit boolean instead.
const NoAncestor = -1

// Tree is a family tree stored with edges pointing from child to parent, so a
// traversal from any person walks upward through their ancestry.
type Tree struct {
	parents *graph.Graph
}

// NewTree builds a tree from parent/child pairs. Duplicate pairs are harmless.
func NewTree(links []domain.ParentLink) *Tree {
	g := graph.New()
	for _, link := range links {
		g.AddVertex(link.Parent)
		g.AddVertex(link.Child)
	}
	for _, link := range links {
		// Both endpoints were registered above, so the edge cannot be rejected.
		_ = g.AddEdge(link.Child, link.Parent)
	}
	return &Tree{parents: g}
}

// People lists everyone named in the tree in ascending order.
func (t *Tree) People() []int {
	return t.parents.Vertices()
}

// Parents returns the direct parents of id in ascending order.
func (t *Tree) Parents(id int) []int {
	return t.parents.Neighbors(id)
}

// EarliestAncestor returns the ancestor of start that is furthest up the tree.
// The boolean is false when start has no recorded parents, including when
// start does not appear in the tree at all.
//
// The search is a breadth-first walk over whole paths: the last path dequeued
// is a longest ancestry chain, and its final vertex is the answer. Parents are
// enqueued in descending id order, so when siblings tie at the greatest depth
// the lower id is dequeued last and wins.
func (t *Tree) EarliestAncestor(start int) (int, bool) {
	if t.parents.Degree(start) == 0 {
		return 0, false
	}

	q := graph.NewQueue[graph.Path]()
	q.Enqueue(graph.Path{start})

	last := start
	for q.Size() > 0 {
		path, _ := q.Dequeue()
		last = path.Last()

		parents := t.parents.Neighbors(last)
		slices.Reverse(parents)
		for _, parent := range parents {
			q.Enqueue(path.Extend(parent))
		}
	}
	return last, true
}

// EarliestAncestor is a convenience wrapper that builds a Tree from links and
// searches it once.
func EarliestAncestor(links []domain.ParentLink, start int) (int, bool) {
	return NewTree(links).EarliestAncestor(start)
}
