package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vanshika/kinship/internal/config"
	"github.com/vanshika/kinship/internal/logging"
	"github.com/vanshika/kinship/internal/store"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer

	connect func(ctx context.Context, opts store.Options) (store.Client, error)
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		cfg:     config.Default(),
		logger:  logging.Discard(),
		out:     out,
		errOut:  errOut,
		connect: store.NewNeo4jClient,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "kinship",
		Short: "Family-tree ancestry and social-network separation tools",
		Long: `kinship finds the earliest ancestor in a family tree, computes shortest
friendship paths in random social networks, measures degrees of separation,
and mirrors generated networks into Neo4j.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.logger = logging.New(a.errOut, cfg.Logging).With("component", cmd.Name())
			return nil
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		newAncestorCmd(a),
		newPathsCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
		newExportCmd(a),
	)
	return root
}

// networkFlags are shared by every command that populates a random network.
type networkFlags struct {
	users int
	avg   int
	seed  int64
}

func (f *networkFlags) register(cmd *cobra.Command, users, avg int) {
	cmd.Flags().IntVar(&f.users, "users", users, "number of users in the network; 0 uses the configured value")
	cmd.Flags().IntVar(&f.avg, "avg", avg, "average number of friendships per user; 0 uses the configured value")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed; 0 uses the configured seed or the clock")
}

// resolve fills flags left at zero from the stats configuration.
func (f *networkFlags) resolve(cmd *cobra.Command, cfg config.StatsConfig) {
	if f.users == 0 && !cmd.Flags().Changed("users") {
		f.users = cfg.Users
	}
	if f.avg == 0 && !cmd.Flags().Changed("avg") {
		f.avg = cfg.AvgFriendships
	}
	if f.seed == 0 {
		f.seed = cfg.Seed
	}
}
