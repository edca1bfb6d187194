package flatten

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// GenerateTree renders the directories and candidate files below the root
// as a tree: directories first, then files, case-insensitively sorted.
// Only path rules apply; file contents are not read.
func (c *Classifier) GenerateTree() (string, error) {
	var treeBuilder strings.Builder
	treeBuilder.WriteString(filepath.Base(c.root) + "/\n")

	subtree, err := c.generateTreeRecursively(c.root, "")
	if err != nil {
		return "", err
	}
	if subtree != "" {
		treeBuilder.WriteString(subtree)
		treeBuilder.WriteString("\n")
	}
	return treeBuilder.String(), nil
}

// generateTreeRecursively builds the lines for one directory level.
func (c *Classifier) generateTreeRecursively(directory, prefix string) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	visible := make([]fs.DirEntry, 0, len(entries))
	for _, entry := range entries {
		entryPath := filepath.Join(directory, entry.Name())
		relPath, err := filepath.Rel(c.root, entryPath)
		if err != nil {
			continue
		}
		switch c.classifyPath(entryPath, filepath.ToSlash(relPath), entry) {
		case StatusDirectory, StatusCandidate:
			visible = append(visible, entry)
		}
	}

	sort.Slice(visible, func(i, j int) bool {
		if visible[i].IsDir() != visible[j].IsDir() {
			return visible[i].IsDir()
		}
		return strings.ToLower(visible[i].Name()) < strings.ToLower(visible[j].Name())
	})

	var output []string
	for i, entry := range visible {
		connector := "├── "
		extension := "│   "
		if i == len(visible)-1 {
			connector = "└── "
			extension = "    "
		}

		if !entry.IsDir() {
			output = append(output, prefix+connector+entry.Name())
			continue
		}

		output = append(output, prefix+connector+entry.Name()+"/")
		entryPath := filepath.Join(directory, entry.Name())
		subtree, err := c.generateTreeRecursively(entryPath, prefix+extension)
		if err != nil {
			c.logger.Warn("Failed to generate subtree", zap.String("directory", entryPath), zap.Error(err))
			continue
		}
		if subtree != "" {
			output = append(output, subtree)
		}
	}

	return strings.Join(output, "\n"), nil
}
