package output

import (
	"fmt"
	"io"

	"github.com/jaswantmandloigwl/git-scripts/internal/analysis"
)

// Formatter renders an attribution report.
type Formatter interface {
	Format(report *analysis.Report, w io.Writer) error
}

// NewFormatter returns the quiet one-line formatter or the standard
// human-readable one.
func NewFormatter(quiet bool) Formatter {
	if quiet {
		return &QuietFormatter{}
	}
	return &StandardFormatter{}
}

// QuietFormatter prints a one-line summary, suitable for scripts.
type QuietFormatter struct{}

func (f *QuietFormatter) Format(report *analysis.Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "added=%d tests=%d\n", report.AddedLines, report.UpdatedTests)
	return err
}

// StandardFormatter prints the headline counts plus a per-file
// breakdown of updated test cases.
type StandardFormatter struct{}

func (f *StandardFormatter) Format(report *analysis.Report, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Commits in window:  %d\n", report.Commits); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total added lines:  %d\n", report.AddedLines); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Updated test cases: %d (of %d across %d test files)\n",
		report.UpdatedTests, report.TotalTests, len(report.TestFiles)); err != nil {
		return err
	}

	if len(report.TestFiles) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, fr := range report.TestFiles {
		if _, err := fmt.Fprintf(w, "  %s: %d/%d updated\n", fr.Path, fr.Updated, fr.Total); err != nil {
			return err
		}
	}
	return nil
}
