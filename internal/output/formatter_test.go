package output

import (
	"bytes"
	"testing"

	"github.com/jaswantmandloigwl/git-scripts/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *analysis.Report {
	return &analysis.Report{
		Commits:    2,
		AddedLines: 42,
		TestFiles: []analysis.FileReport{
			{Path: "src/app.test.ts", Total: 3, Updated: 1},
		},
		TotalTests:   3,
		UpdatedTests: 1,
	}
}

func TestQuietFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(true).Format(sampleReport(), &buf))
	assert.Equal(t, "added=42 tests=1\n", buf.String())
}

func TestStandardFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(false).Format(sampleReport(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Commits in window:  2")
	assert.Contains(t, out, "Total added lines:  42")
	assert.Contains(t, out, "Updated test cases: 1 (of 3 across 1 test files)")
	assert.Contains(t, out, "src/app.test.ts: 1/3 updated")
}

func TestStandardFormatterNoTestFiles(t *testing.T) {
	var buf bytes.Buffer
	report := &analysis.Report{}
	require.NoError(t, NewFormatter(false).Format(report, &buf))
	assert.Contains(t, buf.String(), "Updated test cases: 0")
}
