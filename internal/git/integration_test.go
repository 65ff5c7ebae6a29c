package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

// initAttributionRepo builds a one-commit repository authored by
// "Doe, Jane" on 2025-06-15, containing a single three-line test file.
// Skips the calling test when the git binary is unavailable.
func initAttributionRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available, skipping")
	}

	dir := t.TempDir()
	gitRun(t, dir, nil, "init", "-q")
	gitRun(t, dir, nil, "config", "user.email", "jane@example.com")
	gitRun(t, dir, nil, "config", "user.name", "Doe, Jane")

	content := "test('adds', () => {\n  expect(1 + 1).toBe(2);\n});\n"
	if err := os.WriteFile(filepath.Join(dir, "a.test.js"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	gitRun(t, dir, nil, "add", ".")
	dateEnv := []string{
		"GIT_AUTHOR_DATE=2025-06-15T12:00:00",
		"GIT_COMMITTER_DATE=2025-06-15T12:00:00",
	}
	gitRun(t, dir, dateEnv, "commit", "-q", "-m", "add a.test.js")

	return dir
}

func gitRun(t *testing.T, dir string, extraEnv []string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func TestListCommitsReversedNameFallback(t *testing.T) {
	dir := initAttributionRepo(t)
	collector := NewCollector(dir)

	// History records "Doe, Jane"; the display name still resolves via
	// the reversed-name strategy.
	commits, err := collector.ListCommits(context.Background(), "Jane Doe", "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("ListCommits failed: %v", err)
	}
	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d: %v", len(commits), commits)
	}
}

func TestListCommitsOutsideWindow(t *testing.T) {
	dir := initAttributionRepo(t)
	collector := NewCollector(dir)

	commits, err := collector.ListCommits(context.Background(), "Jane Doe", "2025-07-01", "2025-07-31")
	if err != nil {
		t.Fatalf("ListCommits failed: %v", err)
	}
	if len(commits) != 0 {
		t.Fatalf("expected no commits outside the window, got %v", commits)
	}
}

func TestListCommitsUnknownAuthor(t *testing.T) {
	dir := initAttributionRepo(t)
	collector := NewCollector(dir)

	commits, err := collector.ListCommits(context.Background(), "Somebody Else", "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("ListCommits failed: %v", err)
	}
	if len(commits) != 0 {
		t.Fatalf("expected no commits for unknown author, got %v", commits)
	}
}

func TestHistoryAgainstSyntheticRepo(t *testing.T) {
	dir := initAttributionRepo(t)
	ctx := context.Background()

	commits, err := NewCollector(dir).ListCommits(ctx, "Jane Doe", "2025-06-01", "2025-06-30")
	if err != nil || len(commits) != 1 {
		t.Fatalf("commit collection failed: commits=%v err=%v", commits, err)
	}

	history := NewHistory(dir)

	files, err := history.FilesChanged(ctx, commits)
	if err != nil {
		t.Fatalf("FilesChanged failed: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"a.test.js"}) {
		t.Errorf("FilesChanged = %v, want [a.test.js]", files)
	}

	lines, err := history.AddedLines(ctx, "a.test.js", commits)
	if err != nil {
		t.Fatalf("AddedLines failed: %v", err)
	}
	if !reflect.DeepEqual(lines, []int{1, 2, 3}) {
		t.Errorf("AddedLines = %v, want [1 2 3]", lines)
	}

	total, err := history.TotalAddedLines(ctx, commits)
	if err != nil {
		t.Fatalf("TotalAddedLines failed: %v", err)
	}
	if total != 3 {
		t.Errorf("TotalAddedLines = %d, want 3", total)
	}
}

func TestHistoryToleratesBadCommit(t *testing.T) {
	dir := initAttributionRepo(t)
	ctx := context.Background()
	history := NewHistory(dir)

	// A bad ref degrades to no contribution rather than an error.
	files, err := history.FilesChanged(ctx, []string{"0000000000000000000000000000000000000000"})
	if err != nil {
		t.Fatalf("FilesChanged returned error for bad ref: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files for bad ref, got %v", files)
	}

	total, err := history.TotalAddedLines(ctx, []string{"0000000000000000000000000000000000000000"})
	if err != nil {
		t.Fatalf("TotalAddedLines returned error for bad ref: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0 added lines for bad ref, got %d", total)
	}
}

func TestDetect(t *testing.T) {
	dir := initAttributionRepo(t)

	if err := Detect(dir); err != nil {
		t.Errorf("Detect failed on a valid repository: %v", err)
	}
	if err := Detect(t.TempDir()); err == nil {
		t.Error("Detect should fail outside a git repository")
	}
}
