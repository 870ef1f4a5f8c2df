package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient_RecordsStatements(t *testing.T) {
	client := NewMemoryClient()
	ctx := context.Background()

	_, err := client.ExecuteWrite(ctx, "MERGE (u:User {userId: $id})", map[string]any{"id": 1})
	require.NoError(t, err)
	_, err = client.ExecuteRead(ctx, "MATCH (u:User) RETURN u", nil)
	require.NoError(t, err)

	require.Len(t, client.Statements(), 2)
	require.Len(t, client.Writes(), 1)
	require.Len(t, client.Reads(), 1)
	assert.Equal(t, 1, client.Writes()[0].Params["id"])
}

func TestMemoryClient_RespondInOrder(t *testing.T) {
	client := NewMemoryClient().
		Respond("shortestPath", Result{Records: []Record{{"hops": int64(1)}}}).
		Respond("shortestPath", Result{Records: []Record{{"hops": int64(2)}}})
	ctx := context.Background()

	first, err := client.ExecuteRead(ctx, "MATCH p = shortestPath(...)", nil)
	require.NoError(t, err)
	second, err := client.ExecuteRead(ctx, "MATCH p = shortestPath(...)", nil)
	require.NoError(t, err)
	third, err := client.ExecuteRead(ctx, "MATCH p = shortestPath(...)", nil)
	require.NoError(t, err)

	rec, ok := first.First()
	require.True(t, ok)
	assert.Equal(t, int64(1), rec["hops"])
	rec, ok = second.First()
	require.True(t, ok)
	assert.Equal(t, int64(2), rec["hops"])
	_, ok = third.First()
	assert.False(t, ok)
}

func TestMemoryClient_FailOn(t *testing.T) {
	boom := errors.New("boom")
	client := NewMemoryClient().FailOn("DETACH DELETE", boom)

	_, err := client.ExecuteWrite(context.Background(), "MATCH (u:User) DETACH DELETE u", nil)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, client.Statements())

	_, err = client.ExecuteWrite(context.Background(), "MERGE (u:User)", nil)
	assert.NoError(t, err)
}

func TestMemoryClient_ParamsAreCopied(t *testing.T) {
	client := NewMemoryClient()
	params := map[string]any{"id": 1}

	_, err := client.ExecuteWrite(context.Background(), "MERGE", params)
	require.NoError(t, err)
	params["id"] = 2

	assert.Equal(t, 1, client.Writes()[0].Params["id"])
}

func TestNewNeo4jClient_RequiresURI(t *testing.T) {
	_, err := NewNeo4jClient(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrMissingURI)
}
