package service

import (
	"context"
	"fmt"

	"github.com/vanshika/kinship/internal/social"
)

// Mismatch describes a target whose separation differs between the in-memory
// search and the database.
type Mismatch struct {
	TargetUserID  int
	MemoryFound   bool
	MemoryHops    int
	DatabaseFound bool
	DatabaseHops  int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("user %d: memory found=%t hops=%d, database found=%t hops=%d",
		m.TargetUserID, m.MemoryFound, m.MemoryHops, m.DatabaseFound, m.DatabaseHops)
}

// CrossCheck compares hop counts from sg.GetAllSocialPaths(source) with the
// database shortest path for every target. Path contents may differ when
// several shortest paths exist; only reachability and length are compared.
func (e *Exporter) CrossCheck(ctx context.Context, sg *social.SocialGraph, source int, targets []int) ([]Mismatch, error) {
	paths, err := sg.GetAllSocialPaths(source)
	if err != nil {
		return nil, err
	}

	found := make([]*Mismatch, len(targets))
	err = runPool(ctx, e.workers, len(targets), func(idx int) error {
		target := targets[idx]
		remote, err := e.repo.ShortestPathBetweenUsers(ctx, source, target)
		if err != nil {
			return fmt.Errorf("cross-check user %d: %w", target, err)
		}

		local, ok := paths[target]
		m := Mismatch{
			TargetUserID:  target,
			MemoryFound:   ok,
			DatabaseFound: remote.Found,
			DatabaseHops:  remote.Hops,
		}
		if ok {
			m.MemoryHops = local.Hops()
		}
		if m.MemoryFound != m.DatabaseFound || m.MemoryHops != m.DatabaseHops {
			found[idx] = &m
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for _, m := range found {
		if m != nil {
			mismatches = append(mismatches, *m)
		}
	}
	e.logger.Info("cross-check complete", "source", source, "targets", len(targets), "mismatches", len(mismatches))
	return mismatches, nil
}
