package main

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanshika/kinship/internal/social"
)

func newPathsCmd(a *app) *cobra.Command {
	var (
		network networkFlags
		user    int
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Populate a random network and print shortest friendship paths from one user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			network.resolve(cmd, a.cfg.Stats)
			seed := network.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			sg := social.New(
				social.WithRand(rand.New(rand.NewSource(seed))),
				social.WithLogger(a.logger),
			)
			if err := sg.PopulateGraph(network.users, network.avg); err != nil {
				return err
			}
			a.logger.Info("network populated", "users", sg.Len(), "friendships", sg.FriendshipCount(), "seed", seed)

			fmt.Fprintln(a.out, "friendships:")
			for _, u := range sg.Users() {
				fmt.Fprintf(a.out, "  %d: %v\n", u.ID, sg.Friends(u.ID))
			}

			paths, err := sg.GetAllSocialPaths(user)
			if err != nil {
				return err
			}
			targets := make([]int, 0, len(paths))
			for id := range paths {
				targets = append(targets, id)
			}
			slices.Sort(targets)

			fmt.Fprintf(a.out, "paths from %d:\n", user)
			for _, id := range targets {
				fmt.Fprintf(a.out, "  %d: %v\n", id, []int(paths[id]))
			}
			return nil
		},
	}

	network.register(cmd, 10, 2)
	cmd.Flags().IntVar(&user, "user", 1, "user whose extended network is printed")
	return cmd
}
