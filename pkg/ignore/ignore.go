package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalIgnoreFile is the name of the optional ignore file read from the root directory.
const LocalIgnoreFile = ".flattenignore"

// Pattern sources that are not file paths.
const (
	SourceDefaults = "defaults"
	SourceFlags    = "flags"
)

// DefaultPatterns returns the baseline exclusions applied on every run:
// version control, Python bytecode caches, virtual environments and
// dependency install directories. A fresh slice is returned on each call.
func DefaultPatterns() []string {
	return []string{".git*", "__pycache__", "venv", "node_modules", "*.pyc"}
}

// Matcher holds the compiled exclusion patterns for one run.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewMatcher returns an empty Matcher. A nil logger is replaced by a no-op one.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		patterns: []*Pattern{},
		logger:   logger,
	}
}

// Load builds the effective pattern set: the defaults, then the root's
// .flattenignore if present, then ignoreFile if given. Missing files are
// not an error; files that exist but cannot be read are.
func Load(root, ignoreFile string, logger *zap.Logger) (*Matcher, error) {
	m := NewMatcher(logger)
	m.CompileLines(SourceDefaults, DefaultPatterns()...)

	if root != "" {
		if err := m.CompileFile(filepath.Join(root, LocalIgnoreFile)); err != nil {
			return nil, err
		}
	}

	if ignoreFile != "" {
		if err := m.CompileFile(ignoreFile); err != nil {
			return nil, err
		}
	}

	m.logger.Debug("Loaded exclusion patterns", zap.Int("totalPatterns", len(m.patterns)))
	return m, nil
}

// CompileLines compiles pattern lines and appends them to the matcher.
// Blank lines and comments are skipped.
func (m *Matcher) CompileLines(source string, lines ...string) {
	for i, line := range lines {
		p, err := parsePatternLine(line)
		if err != nil {
			m.logger.Warn("Skipping invalid pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if p == nil {
			continue
		}
		p.Source = source
		p.LineNo = i + 1
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled exclusion pattern",
			zap.String("source", source),
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line))
	}
}

// CompileFile reads a newline-delimited pattern file into the matcher.
// A file that does not exist is skipped silently.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		return fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	m.CompileLines(path, lines...)
	m.logger.Debug("Compiled ignore file", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

// Matches reports whether relPath is excluded by any pattern.
func (m *Matcher) Matches(relPath string, isDir bool) bool {
	matched, _ := m.MatchesWithPattern(relPath, isDir)
	return matched
}

// MatchesWithPattern reports whether relPath is excluded and returns the
// first pattern that excluded it.
func (m *Matcher) MatchesWithPattern(relPath string, isDir bool) (bool, *Pattern) {
	candidate := normalizePath(relPath, isDir)
	if candidate == "" {
		return false, nil
	}

	for _, p := range m.patterns {
		if p.Regexp.MatchString(candidate) {
			return true, p
		}
	}
	return false, nil
}

// Patterns returns the source lines of all compiled patterns in load order.
func (m *Matcher) Patterns() []string {
	lines := make([]string, 0, len(m.patterns))
	for _, p := range m.patterns {
		lines = append(lines, p.Line)
	}
	return lines
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// normalizePath converts separators to forward slashes and marks
// directories with a trailing slash so directory-only patterns can match.
func normalizePath(path string, isDir bool) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if path == "." || path == "" {
		return ""
	}
	if isDir && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}
