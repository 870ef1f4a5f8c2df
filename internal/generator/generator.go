package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/kinship/internal/domain"
	"github.com/vanshika/kinship/internal/social"
)

// Dataset contains the generated users and friendships.
type Dataset struct {
	Users       []domain.User       `json:"users"`
	Friendships []domain.Friendship `json:"friendships"`
}

// Apply replaces the contents of sg with the dataset. User ids are assigned by
// sg in order, so they line up with the dataset ids when Users is ordered 1..n.
func (d Dataset) Apply(sg *social.SocialGraph) error {
	sg.Reset()
	for i, u := range d.Users {
		if id := sg.AddUser(u.Name); id != u.ID {
			return fmt.Errorf("user %d at position %d would be assigned id %d", u.ID, i, id)
		}
	}
	for _, f := range d.Friendships {
		if _, err := sg.AddFriendship(f.UserID, f.FriendID); err != nil {
			return fmt.Errorf("apply friendship %d-%d: %w", f.UserID, f.FriendID, err)
		}
	}
	return nil
}

// Generator produces synthetic friendship networks with human-looking names.
type Generator struct {
	cfg           Config
	rand          *rand.Rand
	nameFragments nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumUsers <= 0 {
		cfg.NumUsers = DefaultConfig().NumUsers
	}
	if cfg.AvgFriendships < 0 {
		cfg.AvgFriendships = DefaultConfig().AvgFriendships
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:           cfg,
		rand:          rand.New(rand.NewSource(cfg.Seed)),
		nameFragments: defaultNameFragments(),
	}
}

// Config reports the effective configuration after defaults were applied.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate synthesises users and friendships. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	users := make([]domain.User, g.cfg.NumUsers)
	for i := range users {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		users[i] = domain.User{ID: i + 1, Name: g.randomFullName()}
	}

	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	friendships, err := social.SampleFriendships(g.rand, g.cfg.NumUsers, g.cfg.AvgFriendships)
	if err != nil {
		return Dataset{}, fmt.Errorf("sample friendships: %w", err)
	}

	return Dataset{Users: users, Friendships: friendships}, nil
}

func (g *Generator) randomFullName() string {
	return fmt.Sprintf("%s %s", g.nameFragments.first[g.rand.Intn(len(g.nameFragments.first))],
		g.nameFragments.last[g.rand.Intn(len(g.nameFragments.last))])
}

type nameFragments struct {
	first []string
	last  []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		first: []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia", "Ava", "Ethan", "Zara"},
		last:  []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva", "Brown", "Lee"},
	}
}
