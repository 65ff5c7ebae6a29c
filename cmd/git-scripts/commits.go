package main

import (
	"context"
	"fmt"

	"github.com/jaswantmandloigwl/git-scripts/internal/git"
	"github.com/spf13/cobra"
)

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "List the commits attributed to the configured author",
	Long: `Resolves the configured author against the window using all matching
strategies (exact name, "Last, First" reversal, first-token fallback)
and prints the de-duplicated commit hashes, one per line.`,
	RunE: runCommits,
}

func runCommits(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := git.Detect(cfg.Repo.Path); err != nil {
		return err
	}

	collector := git.NewCollector(cfg.Repo.Path)
	commits, err := collector.ListCommits(ctx, cfg.Repo.Author, cfg.Window.Since, cfg.Window.Until)
	if err != nil {
		return err
	}

	for _, commit := range commits {
		fmt.Println(commit)
	}
	return nil
}
