// Package service mirrors in-memory networks into the graph database and checks
// that both sides agree on separation.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vanshika/kinship/internal/domain"
	"github.com/vanshika/kinship/internal/generator"
	"github.com/vanshika/kinship/internal/logging"
)

const (
	defaultWorkers   = 4
	defaultBatchSize = 500
)

// GraphRepository is the storage contract required by the exporter.
type GraphRepository interface {
	ResetSocialGraph(ctx context.Context) error
	UpsertUsers(ctx context.Context, users []domain.User) error
	UpsertFriendships(ctx context.Context, friendships []domain.Friendship) error
	UpsertParentLinks(ctx context.Context, links []domain.ParentLink) error
	ShortestPathBetweenUsers(ctx context.Context, sourceID, targetID int) (domain.ShortestPath, error)
}

// ExportSummary counts what an export wrote.
type ExportSummary struct {
	Users       int
	Friendships int
	ParentLinks int
	Batches     int
}

// Exporter writes datasets to a GraphRepository in fixed-size batches spread
// over a pool of workers.
type Exporter struct {
	repo      GraphRepository
	workers   int
	batchSize int
	logger    *slog.Logger
}

// NewExporter creates an Exporter. Non-positive workers or batchSize fall back
// to defaults and a nil logger discards output.
func NewExporter(repo GraphRepository, workers, batchSize int, logger *slog.Logger) *Exporter {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Exporter{
		repo:      repo,
		workers:   workers,
		batchSize: batchSize,
		logger:    logger,
	}
}

// ExportDataset writes all users, then all friendships. With reset the
// database is cleared first. Friendships are only written once every user
// batch succeeded, since they match on existing users.
func (e *Exporter) ExportDataset(ctx context.Context, dataset generator.Dataset, reset bool) (ExportSummary, error) {
	var summary ExportSummary

	if reset {
		if err := e.repo.ResetSocialGraph(ctx); err != nil {
			return summary, err
		}
		e.logger.Info("graph reset")
	}

	n, err := exportBatches(ctx, e, "users", dataset.Users, e.repo.UpsertUsers)
	summary.Batches += n
	if err != nil {
		return summary, err
	}
	summary.Users = len(dataset.Users)

	n, err = exportBatches(ctx, e, "friendships", dataset.Friendships, e.repo.UpsertFriendships)
	summary.Batches += n
	if err != nil {
		return summary, err
	}
	summary.Friendships = len(dataset.Friendships)

	e.logger.Info("dataset exported",
		"users", summary.Users,
		"friendships", summary.Friendships,
		"batches", summary.Batches,
	)
	return summary, nil
}

// ExportAncestry writes parent links as Person nodes joined by PARENT_OF.
func (e *Exporter) ExportAncestry(ctx context.Context, links []domain.ParentLink) (ExportSummary, error) {
	n, err := exportBatches(ctx, e, "parent links", links, e.repo.UpsertParentLinks)
	summary := ExportSummary{Batches: n}
	if err != nil {
		return summary, err
	}
	summary.ParentLinks = len(links)
	e.logger.Info("ancestry exported", "links", summary.ParentLinks, "batches", summary.Batches)
	return summary, nil
}

func exportBatches[T any](ctx context.Context, e *Exporter, kind string, items []T, write func(context.Context, []T) error) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	batches := slices.Collect(slices.Chunk(items, e.batchSize))

	err := runPool(ctx, e.workers, len(batches), func(idx int) error {
		if err := write(ctx, batches[idx]); err != nil {
			return fmt.Errorf("%s batch %d: %w", kind, idx, err)
		}
		e.logger.Debug("batch written", "kind", kind, "batch", idx, "size", len(batches[idx]))
		return nil
	})
	return len(batches), err
}
