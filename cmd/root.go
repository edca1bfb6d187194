package cmd

import (
	"flattenrepo/pkg/flatten"
	"flattenrepo/pkg/logging"
	"flattenrepo/pkg/version"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the flattenrepo command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "flattenrepo",
		Short: "Flatten a directory tree into a single Markdown document",
		Long: `flattenrepo walks a directory tree and concatenates the text of every
file that is not excluded into one Markdown document, one fenced section per
file. Hidden files, binary files and paths matching exclusion patterns are
left out.`,
		Version:      version.Get().Version,
		Args:         usageOnError(cobra.NoArgs),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(opts.verbose, version.Name, version.Get().Version)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			summary, err := flatten.Run(cfg, logging.Logger)
			if err != nil {
				return err
			}

			printSummary(cmd.ErrOrStderr(), summary)
			return nil
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	persistent.StringVar(&opts.root, "root", ".", "Directory to flatten")
	persistent.StringVar(&opts.ignoreFile, "ignore-file", "", "Newline-delimited file of exclusion patterns")
	persistent.BoolVar(&opts.includeHidden, "include-hidden", false,
		"Include dotfiles and dot-directories (by default dot-directories are pruned with everything below them)")
	persistent.StringArrayVar(&opts.exclude, "exclude", nil, "Additional exclusion pattern (repeatable)")

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "codebase.md", "Output document path")
	flags.BoolVar(&opts.includeBinary, "include-binary", false, "Include files detected as binary")
	flags.StringSliceVar(&opts.encodings, "encoding", []string{"utf-8", "latin-1"}, "Decoding chain, tried in order")
	flags.IntVar(&opts.maxFileSizeKB, "max-file-size", 0, "Skip files larger than this many KB (0 = no limit)")

	// Runtime errors only print the error; mistyped flags also print usage.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErr(c.UsageString())
		return err
	})

	cmd.AddCommand(newTreeCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// usageOnError wraps an argument validator so that rejected arguments print
// the command usage before cobra reports the error.
func usageOnError(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			cmd.PrintErr(cmd.UsageString())
			return err
		}
		return nil
	}
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
