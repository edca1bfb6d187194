package flatten

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, map[string]string{"md": "markdown"})

	require.NoError(t, w.WriteTitle("project"))
	require.NoError(t, w.WriteSection("README.md", "# Title"))
	require.NoError(t, w.WriteSection("cmd/main.go", "package main\n"))
	require.NoError(t, w.Flush())

	want := "# project Codebase\n\n" +
		"## `README.md`\n```markdown\n# Title\n```\n\n" +
		"## `cmd/main.go`\n```\npackage main\n\n```\n\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, w.Sections())
}

func TestWriterTitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)

	require.NoError(t, w.WriteTitle("empty"))
	require.NoError(t, w.Flush())
	assert.Equal(t, "# empty Codebase\n\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterPropagatesErrors(t *testing.T) {
	w := NewWriter(failingWriter{}, nil)
	require.NoError(t, w.WriteTitle("buffered"))
	assert.ErrorContains(t, w.Flush(), "disk full")
}

func TestLanguageFor(t *testing.T) {
	languages := map[string]string{"md": "markdown", "go": "go"}

	tests := []struct {
		path string
		want string
	}{
		{"notes.md", "markdown"},
		{"docs/guide.md", "markdown"},
		{".github.md", "markdown"},
		{"main.go", "go"},
		{"script.py", ""},
		{"Makefile", ""},
		{".md", ""},
		{"NOTES.MD", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, languageFor(tt.path, languages))
		})
	}
}
