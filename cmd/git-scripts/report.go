package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jaswantmandloigwl/git-scripts/internal/analysis"
	"github.com/jaswantmandloigwl/git-scripts/internal/git"
	"github.com/jaswantmandloigwl/git-scripts/internal/logging"
	"github.com/jaswantmandloigwl/git-scripts/internal/output"
	"github.com/jaswantmandloigwl/git-scripts/internal/treesitter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reportQuiet bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full attribution pipeline and print the totals",
	Long: `Collects the author's commits in the configured window, sums their
added lines, and intersects the lines added to recognized test files
with the test-block spans of those files' current contents.

Recognized test files: *.spec.js, *.test.js, *.test.ts, *.test.tsx,
*.test.jsx at any directory depth.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportQuiet, "quiet", false, "print a one-line summary")
}

func runReport(cmd *cobra.Command, args []string) error {
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
	if len(commits) == 0 {
		logging.WithFields(logrus.Fields{
			"author": cfg.Repo.Author,
			"since":  cfg.Window.Since,
			"until":  cfg.Window.Until,
		}).Info("no commits matched the author in the window")
	}

	engine := analysis.NewEngine(cfg.Repo.Path, git.NewHistory(cfg.Repo.Path), treesitter.ExtractTestBlocks)
	report, err := engine.Run(ctx, commits)
	if err != nil {
		return err
	}

	return output.NewFormatter(reportQuiet).Format(report, os.Stdout)
}
