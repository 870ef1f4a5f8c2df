package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddVertexIsIdempotent(t *testing.T) {
	g := New()
	g.AddVertex(1)
	g.AddVertex(2)
	require.NoError(t, g.AddEdge(1, 2))

	g.AddVertex(1)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []int{2}, g.Neighbors(1), "re-adding a vertex must keep its edges")
}

func TestGraph_AddEdgeRequiresBothVertices(t *testing.T) {
	g := New()
	g.AddVertex(1)

	err := g.AddEdge(1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingVertex))

	var missing *MissingVertexError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 2, missing.Vertex)

	err = g.AddEdge(3, 1)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 3, missing.Vertex)

	assert.False(t, g.HasVertex(2), "AddEdge must not create vertices")
	assert.False(t, g.HasVertex(3), "AddEdge must not create vertices")
	assert.Empty(t, g.Neighbors(1))
}

func TestGraph_EdgesAreDirected(t *testing.T) {
	g := New()
	g.AddVertex(1)
	g.AddVertex(2)
	require.NoError(t, g.AddEdge(1, 2))

	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 0, g.Degree(2))
}

func TestGraph_NeighborsSortedAndCopied(t *testing.T) {
	g := New()
	for _, v := range []int{5, 3, 9, 1} {
		g.AddVertex(v)
	}
	require.NoError(t, g.AddEdge(5, 9))
	require.NoError(t, g.AddEdge(5, 1))
	require.NoError(t, g.AddEdge(5, 3))
	require.NoError(t, g.AddEdge(5, 3))

	got := g.Neighbors(5)
	assert.Equal(t, []int{1, 3, 9}, got)

	got[0] = 42
	assert.Equal(t, []int{1, 3, 9}, g.Neighbors(5), "callers must not be able to mutate adjacency")
}

func TestGraph_NeighborsOfUnknownVertex(t *testing.T) {
	g := New()
	assert.NotNil(t, g.Neighbors(7))
	assert.Empty(t, g.Neighbors(7))
	assert.Equal(t, 0, g.Degree(7))
	assert.False(t, g.HasEdge(7, 8))
}

func TestGraph_Vertices(t *testing.T) {
	g := New()
	for _, v := range []int{4, 2, 8} {
		g.AddVertex(v)
	}
	assert.Equal(t, []int{2, 4, 8}, g.Vertices())
}

func TestPath_ExtendDoesNotAlias(t *testing.T) {
	base := make(Path, 2, 8)
	base[0], base[1] = 1, 2

	a := base.Extend(3)
	b := base.Extend(4)

	assert.Equal(t, Path{1, 2, 3}, a)
	assert.Equal(t, Path{1, 2, 4}, b)
	assert.Equal(t, Path{1, 2}, base)
	assert.Equal(t, 4, b.Last())
	assert.Equal(t, 2, b.Hops())
	assert.Equal(t, 0, Path{}.Hops())
}
