package analysis

import "path/filepath"

// testFilePatterns are the file-name shapes that count as test files.
// They apply to the base name, so any directory depth qualifies.
var testFilePatterns = []string{
	"*.spec.js",
	"*.test.js",
	"*.test.tsx",
	"*.test.jsx",
	"*.test.ts",
}

// IsTestFile reports whether a repository-relative path names a
// recognized test file.
func IsTestFile(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range testFilePatterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
