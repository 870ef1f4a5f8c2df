package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/vanshika/kinship/internal/logging"
	"github.com/vanshika/kinship/internal/social"
)

// TrialConfig drives a multi-trial degree-of-separation experiment.
type TrialConfig struct {
	Trials         int
	Users          int
	AvgFriendships int
	// Seed for the first trial; trial t uses Seed+t. Zero picks a time-based seed.
	Seed    int64
	Workers int
}

// TrialResult is the outcome of a single randomly populated graph.
type TrialResult struct {
	Trial    int           `json:"trial"`
	Seed     int64         `json:"seed"`
	Stats    NetworkStats  `json:"stats"`
	Duration time.Duration `json:"duration"`
}

// Summary averages trial statistics.
type Summary struct {
	Trials                 int     `json:"trials"`
	ExtendedNetworkPercent float64 `json:"extendedNetworkPercent"`
	AverageSeparation      float64 `json:"averageSeparation"`
}

// Report holds every trial and their summary.
type Report struct {
	Trials  []TrialResult `json:"trials"`
	Summary Summary       `json:"summary"`
}

// Runner executes trials sequentially, logging each one as it completes.
type Runner struct {
	logger *slog.Logger
}

// NewRunner builds a Runner. A nil logger discards output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{logger: logger}
}

// Run populates cfg.Trials fresh graphs and analyses each of them.
func (r *Runner) Run(ctx context.Context, cfg TrialConfig) (Report, error) {
	if cfg.Trials <= 0 {
		return Report{}, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	report := Report{Trials: make([]TrialResult, 0, cfg.Trials)}
	for t := 0; t < cfg.Trials; t++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		seed := cfg.Seed + int64(t)
		start := time.Now()
		sg := social.New(
			social.WithRand(rand.New(rand.NewSource(seed))),
			social.WithLogger(r.logger),
		)
		if err := sg.PopulateGraph(cfg.Users, cfg.AvgFriendships); err != nil {
			return Report{}, fmt.Errorf("populate trial %d: %w", t+1, err)
		}

		result, err := Analyze(ctx, sg, cfg.Workers)
		if err != nil {
			return Report{}, fmt.Errorf("analyze trial %d: %w", t+1, err)
		}

		tr := TrialResult{Trial: t + 1, Seed: seed, Stats: result, Duration: time.Since(start)}
		report.Trials = append(report.Trials, tr)
		r.logger.Info("trial complete",
			"trial", tr.Trial,
			"seed", seed,
			"extended_network_pct", result.ExtendedNetworkPercent,
			"avg_separation", result.AverageSeparation,
			"duration_ms", tr.Duration.Milliseconds(),
		)

		report.Summary.ExtendedNetworkPercent += result.ExtendedNetworkPercent
		report.Summary.AverageSeparation += result.AverageSeparation
	}

	report.Summary.Trials = cfg.Trials
	report.Summary.ExtendedNetworkPercent /= float64(cfg.Trials)
	report.Summary.AverageSeparation /= float64(cfg.Trials)
	return report, nil
}
