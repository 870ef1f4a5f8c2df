package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanshika/kinship/internal/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		network networkFlags
		trials  int
		workers int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Measure extended network size and average degree of separation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			network.resolve(cmd, a.cfg.Stats)
			if !cmd.Flags().Changed("trials") {
				trials = a.cfg.Stats.Trials
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Stats.Workers
			}

			report, err := stats.NewRunner(a.logger).Run(cmd.Context(), stats.TrialConfig{
				Trials:         trials,
				Users:          network.users,
				AvgFriendships: network.avg,
				Seed:           network.seed,
				Workers:        workers,
			})
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(a.out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(report)
			}
			for _, trial := range report.Trials {
				fmt.Fprintf(a.out, "trial %d (seed %d): %.2f%% of users in extended network, %.2f average degrees of separation\n",
					trial.Trial, trial.Seed, trial.Stats.ExtendedNetworkPercent, trial.Stats.AverageSeparation)
			}
			fmt.Fprintf(a.out, "summary over %d trials: %.2f%% extended network, %.2f average degrees of separation\n",
				report.Summary.Trials, report.Summary.ExtendedNetworkPercent, report.Summary.AverageSeparation)
			return nil
		},
	}

	network.register(cmd, 0, 0)
	cmd.Flags().IntVar(&trials, "trials", 0, "number of random networks to analyse")
	cmd.Flags().IntVar(&workers, "workers", 0, "users analysed concurrently per network")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	return cmd
}
