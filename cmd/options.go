package cmd

import (
	"fmt"
	"os"

	"flattenrepo/pkg/config"

	"github.com/spf13/cobra"
)

// options holds the raw flag values shared by the commands.
type options struct {
	configPath    string
	verbose       bool
	root          string
	output        string
	ignoreFile    string
	includeBinary bool
	includeHidden bool
	exclude       []string
	encodings     []string
	maxFileSizeKB int
}

// resolve loads the config file, if any, and applies the flags that were set
// explicitly on top of it.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	if o.configPath != "" {
		if _, err := os.Stat(o.configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = o.root
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("ignore-file") {
		cfg.IgnoreFile = o.ignoreFile
	}
	if flags.Changed("include-binary") {
		cfg.IncludeBinary = o.includeBinary
	}
	if flags.Changed("include-hidden") {
		cfg.IncludeHidden = o.includeHidden
	}
	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, o.exclude...)
	}
	if flags.Changed("encoding") {
		cfg.Encodings = o.encodings
	}
	if flags.Changed("max-file-size") {
		cfg.MaxFileSizeKB = o.maxFileSizeKB
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
