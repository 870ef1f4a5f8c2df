package main

import (
	"github.com/spf13/cobra"

	"github.com/vanshika/kinship/internal/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	var network networkFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic users and friendships dataset as JSON to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			network.resolve(cmd, a.cfg.Stats)

			gen := generator.New(generator.Config{
				NumUsers:       network.users,
				AvgFriendships: network.avg,
				Seed:           network.seed,
			})
			dataset, err := gen.Generate(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Info("dataset generated",
				"users", len(dataset.Users),
				"friendships", len(dataset.Friendships),
				"seed", gen.Config().Seed,
			)
			return generator.WriteDataset(a.out, dataset)
		},
	}

	network.register(cmd, 0, 0)
	return cmd
}
