package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gobeaver/beaver-media/cache"
)

func newCacheCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the URL cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "ping",
			Short: "Check that the cache backend is reachable",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(opts, func(c cache.Cache) error {
					if err := c.Ping(cmd.Context()); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "ok")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every cached URL",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(opts, func(c cache.Cache) error {
					if err := c.Clear(cmd.Context()); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "cleared")
					return nil
				})
			},
		},
	)

	return cmd
}

func withCache(opts *options, fn func(cache.Cache) error) error {
	s, err := loadSettings(opts)
	if err != nil {
		return err
	}

	c, err := cache.New(s.Cache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			opts.logger.Warn("close cache", zap.Error(err))
		}
	}()

	opts.logger.Debug("cache opened", zap.String("driver", s.Cache.Driver))
	return fn(c)
}
