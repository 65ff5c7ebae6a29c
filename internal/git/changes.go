package git

import (
	"context"
	"strings"

	"github.com/jaswantmandloigwl/git-scripts/internal/logging"
	"github.com/sirupsen/logrus"
)

// History reads per-commit change information out of a repository.
// Every query is a blocking git subprocess; a failed query degrades to
// an empty contribution for that commit with a warning, so sparse
// failures never abort a run.
type History struct {
	repoPath string
}

// NewHistory creates a History reader for the given repository root.
func NewHistory(repoPath string) *History {
	return &History{repoPath: repoPath}
}

// FilesChanged returns the union of file paths touched by the commits,
// de-duplicated, blank entries trimmed. Order follows first appearance.
func (h *History) FilesChanged(ctx context.Context, commits []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, commit := range commits {
		out, err := runGit(ctx, h.repoPath, "show", "--name-only", "--pretty=format:", commit)
		if err != nil {
			logging.WithFields(logrus.Fields{
				"commit": commit,
				"error":  err,
			}).Warn("name-only query failed, treating as no changes")
			continue
		}
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || seen[line] {
				continue
			}
			seen[line] = true
			files = append(files, line)
		}
	}

	return files, nil
}

// AddedLines returns the new-file line numbers the commits added to one
// file, concatenated across commits. git show is used rather than a
// parent..commit diff so root commits resolve without a parent ref.
// Callers use the result as a membership set; duplicate numbers across
// commits are harmless.
func (h *History) AddedLines(ctx context.Context, file string, commits []string) ([]int, error) {
	var lines []int

	for _, commit := range commits {
		out, err := runGit(ctx, h.repoPath, "show", "--unified=0", "--pretty=format:", commit, "--", file)
		if err != nil {
			logging.WithFields(logrus.Fields{
				"commit": commit,
				"file":   file,
				"error":  err,
			}).Warn("diff query failed, treating as no changes")
			continue
		}
		lines = append(lines, ParseAddedLines(out)...)
	}

	return lines, nil
}
