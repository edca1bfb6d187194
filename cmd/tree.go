package cmd

import (
	"fmt"

	"flattenrepo/pkg/flatten"
	"flattenrepo/pkg/logging"

	"github.com/spf13/cobra"
)

// newTreeCommand prints the directory tree that the root command would walk.
func newTreeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the filtered directory tree",
		Long: `Print the directories and files below the root that pass the hidden-file
rule and the exclusion patterns. File contents are not inspected, so binary
files are listed.`,
		Args: usageOnError(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			c, err := flatten.NewClassifier(cfg, logging.Logger)
			if err != nil {
				return err
			}
			if _, err := c.SkipOutput(cfg.Output); err != nil {
				return err
			}

			tree, err := c.GenerateTree()
			if err != nil {
				return fmt.Errorf("failed to generate tree structure: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), tree)
			return err
		},
	}
}
