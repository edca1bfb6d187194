package flatten

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"flattenrepo/pkg/config"
	"flattenrepo/pkg/ignore"

	"go.uber.org/zap"
)

// Classifier decides, for every entry below a root, whether it belongs in
// the output document, and decodes the files that do.
type Classifier struct {
	root          string
	matcher       *ignore.Matcher
	decoders      DecoderChain
	includeHidden bool
	includeBinary bool
	maxFileSize   int64
	skipPaths     map[string]bool
	logger        *zap.Logger
}

// NewClassifier resolves cfg.Root and loads the exclusion patterns and the
// decoding chain for it.
func NewClassifier(cfg *config.Config, logger *zap.Logger) (*Classifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := resolveRoot(cfg.Root)
	if err != nil {
		return nil, err
	}

	matcher, err := ignore.Load(root, cfg.IgnoreFile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	matcher.CompileLines(ignore.SourceFlags, cfg.Exclude...)

	decoders, err := NewDecoderChain(cfg.Encodings)
	if err != nil {
		return nil, fmt.Errorf("failed to build decoding chain: %w", err)
	}

	logger.Debug("Initialized classifier",
		zap.String("root", root),
		zap.Strings("patterns", matcher.Patterns()),
		zap.Strings("encodings", decoders.Names()),
		zap.Bool("includeHidden", cfg.IncludeHidden),
		zap.Bool("includeBinary", cfg.IncludeBinary))

	return &Classifier{
		root:          root,
		matcher:       matcher,
		decoders:      decoders,
		includeHidden: cfg.IncludeHidden,
		includeBinary: cfg.IncludeBinary,
		maxFileSize:   int64(cfg.MaxFileSizeKB) * 1024,
		skipPaths:     make(map[string]bool),
		logger:        logger,
	}, nil
}

// Root returns the absolute root directory.
func (c *Classifier) Root() string {
	return c.root
}

// Skip excludes an absolute path regardless of the other rules.
func (c *Classifier) Skip(path string) {
	c.skipPaths[filepath.Clean(path)] = true
}

// SkipOutput excludes the output document from the walk and returns its
// absolute path. Symlinks in its directory are resolved so the path
// compares equal to the one seen during the walk.
func (c *Classifier) SkipOutput(output string) (string, error) {
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute output path: %w", err)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(absOutput)); err == nil {
		absOutput = filepath.Join(dir, filepath.Base(absOutput))
	}
	c.Skip(absOutput)
	return absOutput, nil
}

// Walk returns the entries below the root in lexical order. The sequence is
// produced on demand and every range over it walks the tree again.
// Directories that are excluded or hidden are yielded once and not entered.
func (c *Classifier) Walk() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		_ = filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				c.logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
				return nil
			}
			if path == c.root {
				return nil
			}

			relPath, err := filepath.Rel(c.root, path)
			if err != nil {
				c.logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(err))
				return nil
			}

			entry := Entry{
				Path:    path,
				RelPath: filepath.ToSlash(relPath),
				IsDir:   d.IsDir(),
			}
			entry.Status = c.classifyPath(entry.Path, entry.RelPath, d)

			if !yield(entry) {
				return filepath.SkipAll
			}
			if entry.IsDir && entry.Status != StatusDirectory {
				return filepath.SkipDir
			}
			return nil
		})
	}
}

// classifyPath applies the rules that need no file content: output
// self-exclusion, the hidden rule, exclusion patterns and the file type.
func (c *Classifier) classifyPath(path, relPath string, d fs.DirEntry) Status {
	if c.skipPaths[path] {
		return StatusExcluded
	}

	if !c.includeHidden && strings.HasPrefix(d.Name(), ".") {
		return StatusHidden
	}

	if matched, p := c.matcher.MatchesWithPattern(relPath, d.IsDir()); matched {
		c.logger.Debug("Path matches exclusion pattern",
			zap.String("path", relPath),
			zap.String("pattern", p.Line),
			zap.String("source", p.Source))
		return StatusExcluded
	}

	mode := d.Type()
	switch {
	case mode.IsDir():
		return StatusDirectory
	case mode.IsRegular():
		return StatusCandidate
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return StatusCandidate
		}
	}
	return StatusSpecial
}

// Inspect reads and decodes a candidate file and sets its final status.
// Entries in any other status are left untouched. Failures are never
// returned; they turn into a skip status.
func (c *Classifier) Inspect(e *Entry) {
	if e.Status != StatusCandidate {
		return
	}

	if c.maxFileSize > 0 {
		info, err := os.Stat(e.Path)
		if err != nil {
			c.logger.Debug("Failed to stat file", zap.String("filePath", e.Path), zap.Error(err))
			e.Status = StatusUnreadable
			return
		}
		if info.Size() > c.maxFileSize {
			e.Status = StatusTooLarge
			return
		}
	}

	if !c.includeBinary && isBinaryFile(e.Path) {
		e.Status = StatusBinary
		return
	}

	data, err := os.ReadFile(e.Path)
	if err != nil {
		c.logger.Debug("Failed to read file", zap.String("filePath", e.Path), zap.Error(err))
		e.Status = StatusUnreadable
		return
	}

	text, encoding, err := c.decoders.Decode(data)
	if err != nil {
		c.logger.Debug("Failed to decode file", zap.String("filePath", e.Path), zap.Error(err))
		e.Status = StatusUnreadable
		return
	}
	if text == "" {
		e.Status = StatusEmpty
		return
	}

	e.Content = text
	e.Encoding = encoding
	e.Status = StatusIncluded
}

// resolveRoot returns the absolute, symlink-free form of a root directory.
func resolveRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return "", fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, absRoot)
	}
	return absRoot, nil
}
