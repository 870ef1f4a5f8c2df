// Package stats measures how connected a social graph is: how much of the
// network each user can reach and how many hops separate them on average.
package stats

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vanshika/kinship/internal/social"
)

// NetworkStats summarises reachability over every user of a graph.
type NetworkStats struct {
	Users int `json:"users"`
	// ReachablePairs counts (source, target) pairs with a path, self pairs included.
	ReachablePairs int `json:"reachablePairs"`
	// TotalPathLength is the sum of path lengths in vertices over those pairs.
	TotalPathLength int `json:"totalPathLength"`
	// ExtendedNetworkPercent is the share of other users the average user can reach.
	ExtendedNetworkPercent float64 `json:"extendedNetworkPercent"`
	// AverageSeparation is the mean hop count between distinct connected users.
	AverageSeparation float64 `json:"averageSeparation"`
}

// Analyze computes every user's social paths and aggregates them. Users are
// processed concurrently by up to workers goroutines; sg must not be mutated
// until Analyze returns.
func Analyze(ctx context.Context, sg *social.SocialGraph, workers int) (NetworkStats, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	users := sg.Users()
	reached := make([]int, len(users))
	lengths := make([]int, len(users))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, u := range users {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			paths, err := sg.GetAllSocialPaths(u.ID)
			if err != nil {
				return fmt.Errorf("social paths for user %d: %w", u.ID, err)
			}
			reached[i] = len(paths)
			for _, p := range paths {
				lengths[i] += len(p)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NetworkStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return NetworkStats{}, err
	}

	result := NetworkStats{Users: len(users)}
	for i := range users {
		result.ReachablePairs += reached[i]
		result.TotalPathLength += lengths[i]
	}
	summarize(&result)
	return result, nil
}

func summarize(s *NetworkStats) {
	n := s.Users
	if n > 1 {
		avgReached := float64(s.ReachablePairs)/float64(n) - 1
		s.ExtendedNetworkPercent = 100 * avgReached / float64(n-1)
	}
	if pairs := s.ReachablePairs - n; pairs > 0 {
		s.AverageSeparation = float64(s.TotalPathLength-s.ReachablePairs) / float64(pairs)
	}
}
