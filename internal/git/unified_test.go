package git

import (
	"reflect"
	"testing"
)

func TestParseAddedLines(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want []int
	}{
		{
			name: "empty diff",
			diff: "",
			want: nil,
		},
		{
			name: "new file",
			diff: `diff --git a/a.test.js b/a.test.js
new file mode 100644
--- /dev/null
+++ b/a.test.js
@@ -0,0 +1,3 @@
+test('adds', () => {
+  expect(1 + 1).toBe(2);
+});`,
			want: []int{1, 2, 3},
		},
		{
			name: "context line before additions",
			diff: `@@ -5,2 +5,3 @@
 ctx
+added1
+added2`,
			want: []int{6, 7},
		},
		{
			name: "deletion advances cursor",
			diff: `@@ -3,2 +3,1 @@
-removed
+replacement`,
			want: []int{4},
		},
		{
			name: "multiple hunks reset the cursor",
			diff: `@@ -1,1 +1,2 @@
 keep
+first
@@ -10,0 +12,1 @@
+second`,
			want: []int{2, 12},
		},
		{
			name: "no newline marker does not advance",
			diff: `@@ -0,0 +1,1 @@
+only line
\ No newline at end of file`,
			want: []int{1},
		},
		{
			name: "file headers are not additions",
			diff: `--- a/file.js
+++ b/file.js
@@ -0,0 +1,1 @@
+real`,
			want: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAddedLines(tt.diff)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAddedLines() = %v, want %v", got, tt.want)
			}
		})
	}
}
