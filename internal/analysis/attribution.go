package analysis

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jaswantmandloigwl/git-scripts/internal/treesitter"
)

// History is the slice of repository history the engine consumes.
type History interface {
	FilesChanged(ctx context.Context, commits []string) ([]string, error)
	AddedLines(ctx context.Context, file string, commits []string) ([]int, error)
	TotalAddedLines(ctx context.Context, commits []string) (int, error)
}

// ExtractFunc maps a file on disk to its test-block spans.
type ExtractFunc func(path string) ([]treesitter.TestBlock, error)

// Engine attributes added lines and touched test cases to a commit set.
// Test-block spans come from the file's current contents while changed
// lines come from historical diffs; if a file was restructured after the
// window the two numberings can drift apart. That approximation is
// deliberate.
type Engine struct {
	repoPath string
	history  History
	extract  ExtractFunc
}

// NewEngine creates an attribution engine rooted at repoPath.
func NewEngine(repoPath string, history History, extract ExtractFunc) *Engine {
	return &Engine{repoPath: repoPath, history: history, extract: extract}
}

// FileReport is the per-file attribution outcome.
type FileReport struct {
	Path    string // repository-relative
	Total   int    // test cases in the file's current contents
	Updated int    // test cases with at least one changed line in range
}

// Report is the aggregate attribution outcome for one run.
type Report struct {
	Commits      int
	AddedLines   int // across all file types, not just tests
	TestFiles    []FileReport
	TotalTests   int
	UpdatedTests int
}

// Run executes the pipeline over the commit set: total added lines via
// numstat, then for each changed test file an intersection of its
// test-block spans with the lines the commits added. An empty commit
// set yields a zero report. A test file that fails to parse aborts the
// run.
func (e *Engine) Run(ctx context.Context, commits []string) (*Report, error) {
	report := &Report{Commits: len(commits)}
	if len(commits) == 0 {
		return report, nil
	}

	added, err := e.history.TotalAddedLines(ctx, commits)
	if err != nil {
		return nil, err
	}
	report.AddedLines = added

	files, err := e.history.FilesChanged(ctx, commits)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if !IsTestFile(file) {
			continue
		}

		blocks, err := e.extract(filepath.Join(e.repoPath, file))
		if err != nil {
			return nil, fmt.Errorf("extracting test blocks from %s: %w", file, err)
		}

		lines, err := e.history.AddedLines(ctx, file, commits)
		if err != nil {
			return nil, err
		}
		changed := make(map[int]bool, len(lines))
		for _, n := range lines {
			changed[n] = true
		}

		fr := FileReport{Path: file, Total: len(blocks)}
		for _, block := range blocks {
			if touched(block, changed) {
				fr.Updated++
			}
		}

		report.TestFiles = append(report.TestFiles, fr)
		report.TotalTests += fr.Total
		report.UpdatedTests += fr.Updated
	}

	return report, nil
}

// touched reports whether any changed line falls inside the block's
// inclusive [StartLine, EndLine] range.
func touched(block treesitter.TestBlock, changed map[int]bool) bool {
	for line := range changed {
		if line >= block.StartLine && line <= block.EndLine {
			return true
		}
	}
	return false
}
