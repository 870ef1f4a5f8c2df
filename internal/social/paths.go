package social

import (
	"fmt"

	"github.com/vanshika/kinship/internal/graph"
)

// GetAllSocialPaths returns, for every user in userID's extended network, a
// shortest friendship path from userID to that user. userID maps to itself.
//
// Paths are discovered breadth first and a user is recorded the first time a
// path ending at it is dequeued, so every recorded path has minimum length.
// Friends are expanded in ascending id order, which makes the chosen path
// among equally short candidates stable across calls.
func (s *SocialGraph) GetAllSocialPaths(userID int) (map[int]graph.Path, error) {
	if !s.friends.HasVertex(userID) {
		return nil, fmt.Errorf("%w %d", ErrUnknownUser, userID)
	}

	visited := make(map[int]graph.Path)
	q := graph.NewQueue[graph.Path]()
	q.Enqueue(graph.Path{userID})

	for q.Size() > 0 {
		path, _ := q.Dequeue()
		user := path.Last()
		if _, seen := visited[user]; seen {
			continue
		}
		visited[user] = path

		for _, friend := range s.friends.Neighbors(user) {
			if _, seen := visited[friend]; !seen {
				q.Enqueue(path.Extend(friend))
			}
		}
	}
	return visited, nil
}
