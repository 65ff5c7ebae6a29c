package main

import (
	"fmt"

	"github.com/jaswantmandloigwl/git-scripts/internal/treesitter"
	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks <file>",
	Short: "Print the test-block line ranges found in one file",
	Long: `Parses a JavaScript or TypeScript file and prints the inclusive line
range of every test/it call (including .skip/.only), one per line.

Useful for checking what the attribution pipeline will treat as a test
case in a given file.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlocks,
}

func runBlocks(cmd *cobra.Command, args []string) error {
	blocks, err := treesitter.ExtractTestBlocks(args[0])
	if err != nil {
		return err
	}

	for _, block := range blocks {
		fmt.Printf("%d-%d\n", block.StartLine, block.EndLine)
	}
	return nil
}
