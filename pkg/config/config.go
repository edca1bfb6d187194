// Package config holds the settings of a flatten run and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration options for one flatten run.
type Config struct {
	Root          string            // Directory to flatten.
	Output        string            // Destination path of the output document.
	IgnoreFile    string            // Optional newline-delimited pattern file.
	IncludeBinary bool              // Attempt files classified as binary anyway.
	IncludeHidden bool              // Do not exclude dotfiles by name alone.
	Exclude       []string          // Extra exclusion patterns.
	Encodings     []string          // Decoding chain, tried in order.
	Languages     map[string]string // Extension (without dot) to fence language tag.
	MaxFileSizeKB int               // Files above this size are skipped; 0 disables the limit.
}

// DefaultEncodings returns the default decoding chain.
func DefaultEncodings() []string {
	return []string{"utf-8", "latin-1"}
}

// DefaultLanguages returns the default extension to language tag table.
func DefaultLanguages() map[string]string {
	return map[string]string{"md": "markdown"}
}

// DefaultConfig returns a Config with the default values of the command line.
func DefaultConfig() *Config {
	return &Config{
		Root:      ".",
		Output:    "codebase.md",
		Encodings: DefaultEncodings(),
		Languages: DefaultLanguages(),
	}
}

// fileConfig mirrors the YAML layout. Pointers distinguish unset keys from
// zero values.
type fileConfig struct {
	Root          *string           `yaml:"root"`
	Output        *string           `yaml:"output"`
	IgnoreFile    *string           `yaml:"ignore_file"`
	IncludeBinary *bool             `yaml:"include_binary"`
	IncludeHidden *bool             `yaml:"include_hidden"`
	Exclude       []string          `yaml:"exclude"`
	Encodings     []string          `yaml:"encodings"`
	Languages     map[string]string `yaml:"languages"`
	MaxFileSizeKB *int              `yaml:"max_file_size_kb"`
}

// Load reads configuration from path on top of the defaults.
// If the file doesn't exist the defaults are returned without error.
// If the file exists but is malformed an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Root != nil {
		cfg.Root = *fc.Root
	}
	if fc.Output != nil {
		cfg.Output = *fc.Output
	}
	if fc.IgnoreFile != nil {
		cfg.IgnoreFile = *fc.IgnoreFile
	}
	if fc.IncludeBinary != nil {
		cfg.IncludeBinary = *fc.IncludeBinary
	}
	if fc.IncludeHidden != nil {
		cfg.IncludeHidden = *fc.IncludeHidden
	}
	if fc.MaxFileSizeKB != nil {
		cfg.MaxFileSizeKB = *fc.MaxFileSizeKB
	}
	if len(fc.Encodings) > 0 {
		cfg.Encodings = fc.Encodings
	}
	cfg.Exclude = append(cfg.Exclude, fc.Exclude...)
	for ext, lang := range fc.Languages {
		cfg.Languages[ext] = lang
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by the type system.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}
	if c.MaxFileSizeKB < 0 {
		return fmt.Errorf("max file size must not be negative, got %d", c.MaxFileSizeKB)
	}
	if len(c.Encodings) == 0 {
		return errors.New("at least one encoding is required")
	}
	return nil
}
