// Package repository persists the social network and family trees as Cypher
// graphs and runs path queries against them.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/kinship/internal/domain"
	"github.com/vanshika/kinship/internal/store"
)

// ErrInvalidUserID is returned for user ids below 1.
var ErrInvalidUserID = errors.New("user ids start at 1")

// Repository encapsulates graph persistence operations.
type Repository struct {
	client store.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client store.Client) *Repository {
	return &Repository{client: client}
}

// ResetSocialGraph removes every User and Person node along with their edges.
func (r *Repository) ResetSocialGraph(ctx context.Context) error {
	if _, err := r.client.ExecuteWrite(ctx, resetCypher, nil); err != nil {
		return fmt.Errorf("reset social graph: %w", err)
	}
	return nil
}

// UpsertUsers merges the users by id and refreshes their names.
func (r *Repository) UpsertUsers(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(users))
	for _, u := range users {
		if u.ID < 1 {
			return fmt.Errorf("upsert user %d: %w", u.ID, ErrInvalidUserID)
		}
		rows = append(rows, map[string]any{
			"userId": int64(u.ID),
			"name":   u.Name,
		})
	}

	if _, err := r.client.ExecuteWrite(ctx, upsertUsersCypher, map[string]any{"users": rows}); err != nil {
		return fmt.Errorf("upsert %d users: %w", len(users), err)
	}
	return nil
}

// UpsertFriendships merges one undirected FRIENDS_WITH edge per friendship.
// Both users must already exist; rows referring to missing users are skipped
// by the MATCH clause.
func (r *Repository) UpsertFriendships(ctx context.Context, friendships []domain.Friendship) error {
	if len(friendships) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(friendships))
	for _, f := range friendships {
		if f.UserID == f.FriendID {
			return fmt.Errorf("friendship %d-%d: cannot befriend yourself", f.UserID, f.FriendID)
		}
		a, b := f.UserID, f.FriendID
		if a > b {
			a, b = b, a
		}
		rows = append(rows, map[string]any{
			"userId":   int64(a),
			"friendId": int64(b),
		})
	}

	if _, err := r.client.ExecuteWrite(ctx, upsertFriendshipsCypher, map[string]any{"friendships": rows}); err != nil {
		return fmt.Errorf("upsert %d friendships: %w", len(friendships), err)
	}
	return nil
}

// UpsertParentLinks merges Person nodes and a PARENT_OF edge for every link.
func (r *Repository) UpsertParentLinks(ctx context.Context, links []domain.ParentLink) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, map[string]any{
			"parent": int64(l.Parent),
			"child":  int64(l.Child),
		})
	}

	if _, err := r.client.ExecuteWrite(ctx, upsertParentLinksCypher, map[string]any{"links": rows}); err != nil {
		return fmt.Errorf("upsert %d parent links: %w", len(links), err)
	}
	return nil
}

// ShortestPathBetweenUsers finds a minimum-hop friendship chain between two
// users. Found is false when no chain exists.
func (r *Repository) ShortestPathBetweenUsers(ctx context.Context, sourceID, targetID int) (domain.ShortestPath, error) {
	if sourceID < 1 || targetID < 1 {
		return domain.ShortestPath{}, fmt.Errorf("shortest path %d-%d: %w", sourceID, targetID, ErrInvalidUserID)
	}

	path := domain.ShortestPath{
		SourceUserID: sourceID,
		TargetUserID: targetID,
	}
	if sourceID == targetID {
		path.UserIDs = []int{sourceID}
		path.Found = true
		return path, nil
	}

	params := map[string]any{
		"sourceId": int64(sourceID),
		"targetId": int64(targetID),
	}
	res, err := r.client.ExecuteRead(ctx, shortestPathCypher, params)
	if err != nil {
		return domain.ShortestPath{}, fmt.Errorf("shortest path query: %w", err)
	}

	record, ok := res.First()
	if !ok {
		return path, nil
	}

	if idsRaw, ok := record["userIds"].([]any); ok {
		for _, id := range idsRaw {
			path.UserIDs = append(path.UserIDs, toInt(id))
		}
	}
	path.Hops = toInt(record["hops"])
	path.Found = len(path.UserIDs) > 0
	return path, nil
}

// CountUsers reports how many User nodes the database holds.
func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	res, err := r.client.ExecuteRead(ctx, countUsersCypher, nil)
	if err != nil {
		return 0, fmt.Errorf("count users query: %w", err)
	}
	record, ok := res.First()
	if !ok {
		return 0, nil
	}
	return toInt(record["total"]), nil
}

func toInt(val any) int {
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case int32:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

const resetCypher = `
MATCH (n)
WHERE n:User OR n:Person
DETACH DELETE n
`

const upsertUsersCypher = `
UNWIND $users AS row
MERGE (u:User {userId: row.userId})
SET u.name = row.name
`

const upsertFriendshipsCypher = `
UNWIND $friendships AS row
MATCH (a:User {userId: row.userId}), (b:User {userId: row.friendId})
MERGE (a)-[:FRIENDS_WITH]-(b)
`

const upsertParentLinksCypher = `
UNWIND $links AS row
MERGE (p:Person {personId: row.parent})
MERGE (c:Person {personId: row.child})
MERGE (p)-[:PARENT_OF]->(c)
`

const shortestPathCypher = `
MATCH (source:User {userId: $sourceId}), (target:User {userId: $targetId})
MATCH path = shortestPath((source)-[:FRIENDS_WITH*]-(target))
RETURN [n IN nodes(path) | n.userId] AS userIds,
       length(path) AS hops
`

const countUsersCypher = `
MATCH (u:User)
RETURN count(u) AS total
`
