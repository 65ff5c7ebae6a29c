package main

import (
	"fmt"
	"os"

	"github.com/jaswantmandloigwl/git-scripts/internal/config"
	"github.com/jaswantmandloigwl/git-scripts/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile string
	verbose bool
	cfg     *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "git-scripts",
	Short: "Attribute added lines and touched test cases to one author",
	Long: `git-scripts analyzes a local git repository and reports, for one author
over a fixed calendar window, how many lines they added and how many
individual test/it cases they added or modified in recognized test files.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Initialize(logging.DefaultConfig(verbose))

		if err := config.NewEnvLoader().Load(); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .git-scripts.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.SetVersionTemplate(`git-scripts {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(commitsCmd)
	rootCmd.AddCommand(blocksCmd)
}
