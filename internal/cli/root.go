// Package cli implements the beaver-media command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gobeaver/beaver-media/config"
)

type options struct {
	profile   string
	envPrefix string
	verbose   bool
	logger    *zap.Logger
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "beaver-media",
		Short:        "Build delivery URLs for media assets",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !opts.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			opts.logger = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = opts.logger.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.profile, "profile", "", "YAML profile overlaying the environment configuration")
	pf.StringVar(&opts.envPrefix, "env-prefix", config.DefaultPrefix, "environment variable prefix")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		newURLCmd(opts),
		newTokenCmd(opts),
		newCacheCmd(opts),
	)

	return cmd
}
