// Package social models a friendship network and answers degree-of-separation
// questions over it.
package social

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/vanshika/kinship/internal/domain"
	"github.com/vanshika/kinship/internal/graph"
)

// ErrUnknownUser is returned for a user id that was never added.
var ErrUnknownUser = errors.New("unknown user")

var whitespaceRegex = regexp.MustCompile(`\s+`)

// SocialGraph holds users and their mutual friendships. Friendships are kept
// in a directed adjacency graph with both directions always present.
//
// Mutating methods are not safe for concurrent use. Once populated, any number
// of goroutines may call the read-only methods, GetAllSocialPaths included.
type SocialGraph struct {
	lastID  int
	users   map[int]domain.User
	friends *graph.Graph
	edges   int

	logger *slog.Logger
	rand   *rand.Rand
}

// Option customises a SocialGraph.
type Option func(*SocialGraph)

// WithLogger routes friendship warnings to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SocialGraph) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRand sets the random source used by PopulateGraph.
func WithRand(r *rand.Rand) Option {
	return func(s *SocialGraph) {
		if r != nil {
			s.rand = r
		}
	}
}

// New returns an empty social graph.
func New(opts ...Option) *SocialGraph {
	s := &SocialGraph{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.Reset()
	return s
}

// Reset removes every user and friendship and restarts id assignment at 1.
func (s *SocialGraph) Reset() {
	s.lastID = 0
	s.users = make(map[int]domain.User)
	s.friends = graph.New()
	s.edges = 0
}

// AddUser registers a new user and returns the sequential id assigned to it.
func (s *SocialGraph) AddUser(name string) int {
	s.lastID++
	s.users[s.lastID] = domain.User{
		ID:   s.lastID,
		Name: strings.TrimSpace(whitespaceRegex.ReplaceAllString(name, " ")),
	}
	s.friends.AddVertex(s.lastID)
	return s.lastID
}

// AddFriendship links two users in both directions. Self-friendships and
// friendships that already exist are skipped with a warning and report false.
// Unknown users are an error.
func (s *SocialGraph) AddFriendship(userID, friendID int) (bool, error) {
	if userID == friendID {
		s.logger.Warn("you cannot be friends with yourself", "userId", userID)
		return false, nil
	}
	if s.friends.HasEdge(userID, friendID) || s.friends.HasEdge(friendID, userID) {
		s.logger.Warn("friendship already exists", "userId", userID, "friendId", friendID)
		return false, nil
	}

	// Validate both ends before mutating so a failure never leaves a one-way edge.
	for _, id := range []int{userID, friendID} {
		if !s.friends.HasVertex(id) {
			return false, fmt.Errorf("%w %d: %w", ErrUnknownUser, id, &graph.MissingVertexError{Vertex: id})
		}
	}
	if err := s.friends.AddEdge(userID, friendID); err != nil {
		return false, err
	}
	if err := s.friends.AddEdge(friendID, userID); err != nil {
		return false, err
	}
	s.edges++
	return true, nil
}

// User looks up a user by id.
func (s *SocialGraph) User(id int) (domain.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

// Users lists every user ordered by id.
func (s *SocialGraph) Users() []domain.User {
	out := make([]domain.User, 0, len(s.users))
	for _, id := range s.friends.Vertices() {
		out = append(out, s.users[id])
	}
	return out
}

// Friends returns the friends of id in ascending order.
func (s *SocialGraph) Friends(id int) []int {
	return s.friends.Neighbors(id)
}

// Friendships lists each friendship once with UserID < FriendID.
func (s *SocialGraph) Friendships() []domain.Friendship {
	out := make([]domain.Friendship, 0, s.edges)
	for _, u := range s.friends.Vertices() {
		for _, v := range s.friends.Neighbors(u) {
			if u < v {
				out = append(out, domain.Friendship{UserID: u, FriendID: v})
			}
		}
	}
	return out
}

// FriendshipCount is the number of undirected friendships.
func (s *SocialGraph) FriendshipCount() int {
	return s.edges
}

// Len is the number of users.
func (s *SocialGraph) Len() int {
	return len(s.users)
}
