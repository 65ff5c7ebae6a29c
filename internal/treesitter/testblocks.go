package treesitter

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// TestBlock is the inclusive 1-based line span of one test-declaring
// call expression, from its opening token through the end of its
// callback body.
type TestBlock struct {
	StartLine int
	EndLine   int
}

// ExtractTestBlocks parses a file and returns the span of every
// test(...)/it(...) call, including the .skip and .only variants, in
// source order. Spans reflect the file's current contents. A missing
// file yields no blocks rather than an error; a file with syntax errors
// is an error.
func ExtractTestBlocks(filePath string) ([]TestBlock, error) {
	code, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	lang := DetectLanguage(filePath)
	if lang == "" {
		return nil, fmt.Errorf("unsupported file type: %s", filePath)
	}

	lp, err := NewLanguageParser(lang)
	if err != nil {
		return nil, err
	}
	defer lp.Close()

	tree, err := lp.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("syntax error in %s", filePath)
	}

	var blocks []TestBlock
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if node.Kind() == "call_expression" && isTestCallee(node.ChildByFieldName("function"), code) {
			blocks = append(blocks, TestBlock{
				StartLine: int(node.StartPosition().Row) + 1,
				EndLine:   int(node.EndPosition().Row) + 1,
			})
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(root)

	return blocks, nil
}

// isTestCallee reports whether a callee node declares a test case: the
// bare identifier test or it, or a member access test.skip, test.only,
// it.skip, it.only.
func isTestCallee(callee *sitter.Node, code []byte) bool {
	if callee == nil {
		return false
	}

	switch callee.Kind() {
	case "identifier":
		name := getNodeText(callee, code)
		return name == "test" || name == "it"

	case "member_expression":
		object := callee.ChildByFieldName("object")
		property := callee.ChildByFieldName("property")
		if object == nil || property == nil || object.Kind() != "identifier" {
			return false
		}
		name := getNodeText(object, code)
		if name != "test" && name != "it" {
			return false
		}
		modifier := getNodeText(property, code)
		return modifier == "skip" || modifier == "only"
	}

	return false
}
