package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Detect checks that repoPath is inside a git working tree.
// Uses git rev-parse to verify before any history query runs.
func Detect(repoPath string) error {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = repoPath
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s is not a git repository: %w", repoPath, err)
	}
	return nil
}

// runGit runs a git subcommand in dir and returns its stdout as text.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s failed: %w (stderr: %s)",
				args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}

	return string(output), nil
}
