package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "codebase.md", cfg.Output)
	assert.Equal(t, []string{"utf-8", "latin-1"}, cfg.Encodings)
	assert.Equal(t, map[string]string{"md": "markdown"}, cfg.Languages)
	assert.False(t, cfg.IncludeBinary)
	assert.False(t, cfg.IncludeHidden)
	assert.Zero(t, cfg.MaxFileSizeKB)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsAreNotShared(t *testing.T) {
	a := DefaultConfig()
	a.Languages["go"] = "go"
	a.Encodings[0] = "ascii"

	b := DefaultConfig()
	assert.NotContains(t, b.Languages, "go")
	assert.Equal(t, "utf-8", b.Encodings[0])
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "flattenrepo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flattenrepo.yaml")
	content := `
root: ./src
output: out/snapshot.md
include_hidden: true
exclude:
  - "*.log"
  - dist/
encodings: [utf-8, windows-1252]
languages:
  go: go
  py: python
max_file_size_kb: 256
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./src", cfg.Root)
	assert.Equal(t, "out/snapshot.md", cfg.Output)
	assert.True(t, cfg.IncludeHidden)
	assert.False(t, cfg.IncludeBinary)
	assert.Equal(t, []string{"*.log", "dist/"}, cfg.Exclude)
	assert.Equal(t, []string{"utf-8", "windows-1252"}, cfg.Encodings)
	assert.Equal(t, map[string]string{"md": "markdown", "go": "go", "py": "python"}, cfg.Languages)
	assert.Equal(t, 256, cfg.MaxFileSizeKB)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flattenrepo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exclude: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flattenrepo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_file_size_kb: -1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "max file size")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Encodings = nil
	assert.Error(t, cfg.Validate())
}
