package git

import (
	"context"
	"strings"

	"github.com/jaswantmandloigwl/git-scripts/internal/logging"
	"github.com/sirupsen/logrus"
)

// Collector resolves the set of commits an author made inside a calendar
// window. Author metadata in git history is unreliable (display-name
// variations between machines and hosting platforms), so the collector
// runs an ordered list of matching strategies and unions their results.
type Collector struct {
	repoPath string
}

// NewCollector creates a Collector for the given repository root.
func NewCollector(repoPath string) *Collector {
	return &Collector{repoPath: repoPath}
}

// authorStrategy is one way of matching a display name against recorded
// author metadata. pattern is passed to git log --author; accept, when
// non-nil, post-filters the returned author strings.
type authorStrategy struct {
	name    string
	pattern string
	accept  func(author string) bool
}

// strategiesFor builds the ordered strategy list for a display name:
// the exact name, the "Last, First" reordering, and a loose first-token
// query post-filtered to require both the first and last name tokens.
func strategiesFor(displayName string) []authorStrategy {
	strategies := []authorStrategy{{name: "exact", pattern: displayName}}

	tokens := strings.Fields(displayName)
	if len(tokens) < 2 {
		return strategies
	}
	first := tokens[0]
	last := tokens[len(tokens)-1]

	// "Jane Q Doe" is often recorded as "Doe, Jane Q".
	reversed := last + ", " + strings.Join(tokens[:len(tokens)-1], " ")
	strategies = append(strategies, authorStrategy{name: "reversed", pattern: reversed})

	strategies = append(strategies, authorStrategy{
		name:    "first-token",
		pattern: first,
		accept: func(author string) bool {
			lower := strings.ToLower(author)
			return strings.Contains(lower, strings.ToLower(first)) &&
				strings.Contains(lower, strings.ToLower(last))
		},
	})

	return strategies
}

// ListCommits returns the de-duplicated commit hashes the author made in
// the inclusive window. since and until are calendar dates (YYYY-MM-DD);
// the window covers since 00:00:00 through until 23:59:59 in the
// timezone git resolves locally. A strategy whose query fails degrades
// to an empty candidate set with a warning; an overall empty result
// means "nothing to analyze", not an error.
func (c *Collector) ListCommits(ctx context.Context, author, since, until string) ([]string, error) {
	seen := make(map[string]bool)
	var commits []string

	for _, strat := range strategiesFor(author) {
		out, err := runGit(ctx, c.repoPath, "log",
			"--since="+since+" 00:00:00",
			"--until="+until+" 23:59:59",
			"--author="+strat.pattern,
			"--pretty=format:%H|%an")
		if err != nil {
			logging.WithFields(logrus.Fields{
				"strategy": strat.name,
				"author":   strat.pattern,
				"error":    err,
			}).Warn("commit query failed, treating as no matches")
			continue
		}

		for _, hash := range parseCommitLines(out, strat.accept) {
			if !seen[hash] {
				seen[hash] = true
				commits = append(commits, hash)
			}
		}
	}

	return commits, nil
}

// parseCommitLines parses "hash|author" lines, applying the optional
// accept filter to the author portion.
func parseCommitLines(out string, accept func(string) bool) []string {
	var hashes []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hash, author, _ := strings.Cut(line, "|")
		if accept != nil && !accept(author) {
			continue
		}
		hashes = append(hashes, hash)
	}
	return hashes
}
