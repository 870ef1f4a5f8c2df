package social

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vanshika/kinship/internal/domain"
)

// ErrInvalidPopulation is returned when the requested friendship density
// cannot be produced for the requested number of users.
var ErrInvalidPopulation = errors.New("invalid population parameters")

// PopulateGraph discards all users and friendships, then creates numUsers
// users named "User 0".."User n-1" and numUsers*avgFriendships/2 friendships
// drawn uniformly from all possible pairs.
func (s *SocialGraph) PopulateGraph(numUsers, avgFriendships int) error {
	friendships, err := SampleFriendships(s.rand, numUsers, avgFriendships)
	if err != nil {
		return err
	}

	s.Reset()
	for i := 0; i < numUsers; i++ {
		s.AddUser(fmt.Sprintf("User %d", i))
	}
	for _, f := range friendships {
		if _, err := s.AddFriendship(f.UserID, f.FriendID); err != nil {
			return fmt.Errorf("populate friendship %d-%d: %w", f.UserID, f.FriendID, err)
		}
	}
	return nil
}

// SampleFriendships picks numUsers*avgFriendships/2 distinct pairs out of all
// pairs of the user ids 1..numUsers. Each pair has UserID < FriendID, so no
// self or duplicate friendship is ever produced.
func SampleFriendships(rng *rand.Rand, numUsers, avgFriendships int) ([]domain.Friendship, error) {
	if numUsers < 0 || avgFriendships < 0 {
		return nil, fmt.Errorf("%w: users=%d avgFriendships=%d must not be negative", ErrInvalidPopulation, numUsers, avgFriendships)
	}
	want := numUsers * avgFriendships / 2
	if want == 0 {
		return []domain.Friendship{}, nil
	}
	if avgFriendships >= numUsers {
		return nil, fmt.Errorf("%w: users=%d must exceed avgFriendships=%d", ErrInvalidPopulation, numUsers, avgFriendships)
	}

	possible := make([]domain.Friendship, 0, numUsers*(numUsers-1)/2)
	for userID := 1; userID <= numUsers; userID++ {
		for friendID := userID + 1; friendID <= numUsers; friendID++ {
			possible = append(possible, domain.Friendship{UserID: userID, FriendID: friendID})
		}
	}

	rng.Shuffle(len(possible), func(i, j int) {
		possible[i], possible[j] = possible[j], possible[i]
	})
	return possible[:want], nil
}
