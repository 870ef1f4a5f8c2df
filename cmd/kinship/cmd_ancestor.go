package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanshika/kinship/internal/ancestry"
	"github.com/vanshika/kinship/internal/domain"
)

const samplePairs = "1:3,2:3,3:6,5:6,5:7,4:5,4:8,8:9,11:8,10:1"

func newAncestorCmd(a *app) *cobra.Command {
	var (
		pairs string
		start int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "ancestor",
		Short: "Print the earliest ancestor of a person, or -1 when they have no parents",
		Example: `  kinship ancestor --start 6
  kinship ancestor --all --pairs 1:3,2:3,3:6`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			links, err := parsePairs(pairs)
			if err != nil {
				return err
			}
			tree := ancestry.NewTree(links)

			if !all {
				fmt.Fprintln(a.out, earliest(tree, start))
				return nil
			}
			for _, person := range tree.People() {
				fmt.Fprintf(a.out, "%d\t%d\n", person, earliest(tree, person))
			}
			a.logger.Debug("ancestry resolved", "people", len(tree.People()), "links", len(links))
			return nil
		},
	}

	cmd.Flags().StringVar(&pairs, "pairs", samplePairs, "comma separated parent:child pairs")
	cmd.Flags().IntVar(&start, "start", 0, "person to look up")
	cmd.Flags().BoolVar(&all, "all", false, "print the earliest ancestor of every person in the tree")
	cmd.MarkFlagsOneRequired("start", "all")
	cmd.MarkFlagsMutuallyExclusive("start", "all")
	return cmd
}

func earliest(tree *ancestry.Tree, person int) int {
	if id, ok := tree.EarliestAncestor(person); ok {
		return id
	}
	return ancestry.NoAncestor
}

func parsePairs(raw string) ([]domain.ParentLink, error) {
	var links []domain.ParentLink
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parent, child, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("pair %q: want parent:child", field)
		}
		p, err := strconv.Atoi(strings.TrimSpace(parent))
		if err != nil {
			return nil, fmt.Errorf("pair %q: parent: %w", field, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(child))
		if err != nil {
			return nil, fmt.Errorf("pair %q: child: %w", field, err)
		}
		links = append(links, domain.ParentLink{Parent: p, Child: c})
	}
	return links, nil
}
