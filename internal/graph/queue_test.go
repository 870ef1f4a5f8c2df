package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue[int]()
	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 3, q.Size())

	for want := 1; want <= 3; want++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, q.Size())
}

func TestQueue_DequeueEmpty(t *testing.T) {
	var q Queue[Path]

	got, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 0, q.Size())
}

func TestQueue_InterleavedAcrossCompaction(t *testing.T) {
	q := NewQueue[int]()
	next, expected := 0, 0

	// Keep the queue short while pushing far more items than the compaction
	// threshold so the backing array is reclaimed repeatedly.
	for round := 0; round < 500; round++ {
		q.Enqueue(next)
		next++
		q.Enqueue(next)
		next++

		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, expected, got)
		expected++
	}

	for q.Size() > 0 {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, expected, got)
		expected++
	}
	assert.Equal(t, next, expected)
}
