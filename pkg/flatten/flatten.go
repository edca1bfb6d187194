// Package flatten turns a directory tree into a single Markdown document.
package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flattenrepo/pkg/config"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Run flattens cfg.Root into cfg.Output, overwriting it. Per-file problems
// only skip the file; the returned error covers configuration and output
// failures.
func Run(cfg *config.Config, logger *zap.Logger) (summary Summary, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := NewClassifier(cfg, logger)
	if err != nil {
		return Summary{}, err
	}
	logger.Info("Starting flatten", zap.String("root", c.Root()), zap.String("output", cfg.Output))

	outputPath, err := c.SkipOutput(cfg.Output)
	if err != nil {
		return Summary{}, err
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, outFile.Close())
	}()

	summary = Summary{Output: outputPath, Counts: make(map[Status]int)}
	w := NewWriter(outFile, cfg.Languages)
	if err := w.WriteTitle(filepath.Base(c.Root())); err != nil {
		return summary, err
	}

	for entry := range c.Walk() {
		c.Inspect(&entry)
		summary.Counts[entry.Status]++

		if entry.Status != StatusIncluded {
			if entry.Status != StatusDirectory {
				logger.Debug("Skipping entry", zap.String("path", entry.RelPath), zap.Stringer("status", entry.Status))
			}
			continue
		}

		if err := w.WriteSection(entry.RelPath, entry.Content); err != nil {
			return summary, err
		}
		logger.Debug("Wrote file section",
			zap.String("path", entry.RelPath),
			zap.String("encoding", entry.Encoding),
			zap.Int("sizeBytes", len(entry.Content)))
	}

	if err := w.Flush(); err != nil {
		return summary, err
	}

	logger.Info("Flatten completed",
		zap.String("output", outputPath),
		zap.Int("includedFiles", summary.Included()),
		zap.Int("skippedEntries", summary.Skipped()),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
