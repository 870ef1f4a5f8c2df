package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanshika/kinship/internal/generator"
	"github.com/vanshika/kinship/internal/repository"
	"github.com/vanshika/kinship/internal/service"
	"github.com/vanshika/kinship/internal/social"
	"github.com/vanshika/kinship/internal/store"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		network   networkFlags
		batchSize int
		workers   int
		reset     bool
		pairs     string
		checkUser int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a network and write it to Neo4j",
		Long: `export generates a synthetic network and writes its users and friendships
to the graph database configured by GRAPH_URI. With --check-user it then
compares in-memory separation from that user against the database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			network.resolve(cmd, a.cfg.Stats)

			gen := generator.New(generator.Config{
				NumUsers:       network.users,
				AvgFriendships: network.avg,
				Seed:           network.seed,
			})
			dataset, err := gen.Generate(ctx)
			if err != nil {
				return err
			}

			client, err := a.connect(ctx, store.Options{
				URI:            a.cfg.Graph.URI,
				Database:       a.cfg.Graph.Database,
				Username:       a.cfg.Graph.Username,
				Password:       a.cfg.Graph.Password,
				MaxConnections: a.cfg.Graph.MaxConnections,
			})
			if err != nil {
				return fmt.Errorf("connect to graph: %w", err)
			}
			defer func() {
				if err := client.Close(context.Background()); err != nil {
					a.logger.Warn("closing graph client failed", "error", err)
				}
			}()
			a.logger.Info("connected to graph", "uri", a.cfg.Graph.URI, "database", a.cfg.Graph.Database)

			exporter := service.NewExporter(repository.New(client), workers, batchSize, a.logger)

			start := time.Now()
			summary, err := exporter.ExportDataset(ctx, dataset, reset)
			if err != nil {
				return fmt.Errorf("export dataset: %w", err)
			}
			fmt.Fprintf(a.out, "exported %d users and %d friendships in %d batches (%s)\n",
				summary.Users, summary.Friendships, summary.Batches, time.Since(start).Round(time.Millisecond))

			if pairs != "" {
				links, err := parsePairs(pairs)
				if err != nil {
					return err
				}
				ancestrySummary, err := exporter.ExportAncestry(ctx, links)
				if err != nil {
					return fmt.Errorf("export ancestry: %w", err)
				}
				fmt.Fprintf(a.out, "exported %d parent links\n", ancestrySummary.ParentLinks)
			}

			if checkUser == 0 {
				return nil
			}
			return crossCheck(ctx, a, exporter, dataset, checkUser)
		},
	}

	network.register(cmd, 0, 0)
	cmd.Flags().IntVar(&batchSize, "batch", 500, "rows written per statement")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent write workers")
	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing users and people before writing")
	cmd.Flags().StringVar(&pairs, "pairs", "", "also export these parent:child pairs")
	cmd.Flags().IntVar(&checkUser, "check-user", 0, "after export, compare separation from this user against the database")
	return cmd
}

func crossCheck(ctx context.Context, a *app, exporter *service.Exporter, dataset generator.Dataset, source int) error {
	sg := social.New(social.WithLogger(a.logger))
	if err := dataset.Apply(sg); err != nil {
		return err
	}

	targets := make([]int, 0, sg.Len())
	for _, u := range sg.Users() {
		targets = append(targets, u.ID)
	}

	mismatches, err := exporter.CrossCheck(ctx, sg, source, targets)
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		fmt.Fprintln(a.out, m)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d users disagree with the database", len(mismatches), len(targets))
	}
	fmt.Fprintf(a.out, "cross-check from user %d: %d users agree\n", source, len(targets))
	return nil
}
