package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/jaswantmandloigwl/git-scripts/internal/logging"
	"github.com/sirupsen/logrus"
)

// TotalAddedLines sums the added-line column of every commit's numstat
// across all files, regardless of file type. Binary files report "-" in
// the numeric columns and contribute nothing.
func (h *History) TotalAddedLines(ctx context.Context, commits []string) (int, error) {
	total := 0

	for _, commit := range commits {
		out, err := runGit(ctx, h.repoPath, "show", "--numstat", "--pretty=format:", commit)
		if err != nil {
			logging.WithFields(logrus.Fields{
				"commit": commit,
				"error":  err,
			}).Warn("numstat query failed, treating as no changes")
			continue
		}
		total += sumNumstatAdded(out)
	}

	return total, nil
}

// sumNumstatAdded parses "added<TAB>removed<TAB>path" lines and sums the
// added column. Lines whose added column is not a non-negative integer
// are skipped.
func sumNumstatAdded(out string) int {
	total := 0
	for _, line := range strings.Split(out, "\n") {
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 3 {
			continue
		}
		added, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || added < 0 {
			continue
		}
		total += added
	}
	return total
}
