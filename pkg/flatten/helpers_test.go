package flatten

import (
	"os"
	"path/filepath"
	"testing"

	"flattenrepo/pkg/config"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// writeFiles creates files below root, making parent directories as needed.
func writeFiles(t *testing.T, root string, files map[string][]byte) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, content, 0o644))
	}
}

// testConfig returns a default config rooted at root that writes outside it.
func testConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Root = root
	cfg.Output = filepath.Join(t.TempDir(), "codebase.md")
	return cfg
}

// readOutput returns the output document written for cfg.
func readOutput(t *testing.T, cfg *config.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	return string(data)
}

// fencedBlock is a fenced code block found in an output document.
type fencedBlock struct {
	Heading  string
	Language string
}

// parseSections parses an output document as Markdown and pairs every
// fenced block with the level-two heading before it.
func parseSections(t *testing.T, doc string) []fencedBlock {
	t.Helper()
	source := []byte(doc)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var blocks []fencedBlock
	heading := ""
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				heading = string(node.Text(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			blocks = append(blocks, fencedBlock{Heading: heading, Language: string(node.Language(source))})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return blocks
}
