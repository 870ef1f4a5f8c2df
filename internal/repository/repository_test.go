package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vanshika/kinship/internal/domain"
	"github.com/vanshika/kinship/internal/store"
)

func TestRepository_UpsertUsers(t *testing.T) {
	mem := store.NewMemoryClient()
	repo := New(mem)

	users := []domain.User{{ID: 1, Name: "Jane Doe"}, {ID: 2, Name: "Omar Khan"}}
	if err := repo.UpsertUsers(context.Background(), users); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.Writes()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	call := calls[0]
	if call.Cypher != upsertUsersCypher {
		t.Fatalf("unexpected query\nexpected:\n%s\ngot:\n%s", upsertUsersCypher, call.Cypher)
	}

	rows, ok := call.Params["users"].([]map[string]any)
	if !ok || len(rows) != len(users) {
		t.Fatalf("expected users slice of len %d got %T (len=%d)", len(users), call.Params["users"], len(rows))
	}
	if rows[1]["userId"] != int64(2) {
		t.Errorf("expected userId 2, got %v", rows[1]["userId"])
	}
	if rows[0]["name"] != "Jane Doe" {
		t.Errorf("name mismatch: want Jane Doe got %v", rows[0]["name"])
	}
}

func TestRepository_UpsertUsersEmptyIsNoop(t *testing.T) {
	mem := store.NewMemoryClient()
	if err := New(mem).UpsertUsers(context.Background(), nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n := len(mem.Statements()); n != 0 {
		t.Fatalf("expected no queries, got %d", n)
	}
}

func TestRepository_UpsertUsersRejectsInvalidID(t *testing.T) {
	mem := store.NewMemoryClient()
	err := New(mem).UpsertUsers(context.Background(), []domain.User{{ID: 0, Name: "nobody"}})
	if !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if n := len(mem.Statements()); n != 0 {
		t.Fatalf("expected no queries, got %d", n)
	}
}

func TestRepository_UpsertFriendshipsOrdersPairs(t *testing.T) {
	mem := store.NewMemoryClient()
	repo := New(mem)

	err := repo.UpsertFriendships(context.Background(), []domain.Friendship{{UserID: 5, FriendID: 2}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	call := mem.Writes()[0]
	if call.Cypher != upsertFriendshipsCypher {
		t.Fatalf("unexpected query %s", call.Cypher)
	}
	rows := call.Params["friendships"].([]map[string]any)
	if rows[0]["userId"] != int64(2) || rows[0]["friendId"] != int64(5) {
		t.Errorf("expected pair 2-5, got %v-%v", rows[0]["userId"], rows[0]["friendId"])
	}
}

func TestRepository_UpsertFriendshipsRejectsSelf(t *testing.T) {
	mem := store.NewMemoryClient()
	err := New(mem).UpsertFriendships(context.Background(), []domain.Friendship{{UserID: 3, FriendID: 3}})
	if err == nil {
		t.Fatal("expected an error for a self friendship")
	}
}

func TestRepository_UpsertParentLinks(t *testing.T) {
	mem := store.NewMemoryClient()
	links := []domain.ParentLink{{Parent: 1, Child: 3}, {Parent: 2, Child: 3}}

	if err := New(mem).UpsertParentLinks(context.Background(), links); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	call := mem.Writes()[0]
	if call.Cypher != upsertParentLinksCypher {
		t.Fatalf("unexpected query %s", call.Cypher)
	}
	rows := call.Params["links"].([]map[string]any)
	if len(rows) != 2 || rows[1]["parent"] != int64(2) || rows[1]["child"] != int64(3) {
		t.Errorf("unexpected link rows %v", rows)
	}
}

func TestRepository_ResetSocialGraph(t *testing.T) {
	mem := store.NewMemoryClient()
	if err := New(mem).ResetSocialGraph(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls := mem.Writes(); len(calls) != 1 || calls[0].Cypher != resetCypher {
		t.Fatalf("expected the reset statement, got %v", calls)
	}
}

func TestRepository_WriteErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	mem := store.NewMemoryClient().FailOn("", boom)

	err := New(mem).UpsertUsers(context.Background(), []domain.User{{ID: 1, Name: "a"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestRepository_ShortestPathBetweenUsers(t *testing.T) {
	mem := store.NewMemoryClient().Respond("shortestPath", store.Result{Records: []store.Record{{
		"userIds": []any{int64(1), int64(4), int64(7)},
		"hops":    int64(2),
	}}})
	repo := New(mem)

	path, err := repo.ShortestPathBetweenUsers(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := domain.ShortestPath{
		SourceUserID: 1,
		TargetUserID: 7,
		UserIDs:      []int{1, 4, 7},
		Hops:         2,
		Found:        true,
	}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("unexpected path\nwant %+v\ngot  %+v", want, path)
	}

	call := mem.Reads()[0]
	if call.Params["sourceId"] != int64(1) || call.Params["targetId"] != int64(7) {
		t.Errorf("unexpected params %v", call.Params)
	}
}

func TestRepository_ShortestPathUnreachable(t *testing.T) {
	mem := store.NewMemoryClient()

	path, err := New(mem).ShortestPathBetweenUsers(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path.Found || len(path.UserIDs) != 0 {
		t.Fatalf("expected no path, got %+v", path)
	}
}

func TestRepository_ShortestPathSameUser(t *testing.T) {
	mem := store.NewMemoryClient()

	path, err := New(mem).ShortestPathBetweenUsers(context.Background(), 3, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !path.Found || path.Hops != 0 || !reflect.DeepEqual(path.UserIDs, []int{3}) {
		t.Fatalf("unexpected path %+v", path)
	}
	if n := len(mem.Statements()); n != 0 {
		t.Fatalf("expected no queries for identical users, got %d", n)
	}
}

func TestRepository_CountUsers(t *testing.T) {
	mem := store.NewMemoryClient().Respond("count(u)", store.Result{Records: []store.Record{{"total": int64(12)}}})

	n, err := New(mem).CountUsers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != 12 {
		t.Fatalf("expected 12 users, got %d", n)
	}
}
