package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gobeaver/beaver-media/authtoken"
)

func newTokenCmd(opts *options) *cobra.Command {
	var (
		acl      []string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token [path]",
		Short: "Print an auth token for a delivery path or the configured ACL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(opts)
			if err != nil {
				return err
			}

			cfg := s.Media.AuthToken
			if len(acl) > 0 {
				cfg.ACL = acl
			}
			if duration > 0 {
				cfg.Expiration = 0
				cfg.Duration = duration
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}

			token, err := authtoken.New(cfg).Generate(path)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&acl, "acl", nil, "path patterns the token grants, e.g. /image/*")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime, replacing any configured expiration")

	return cmd
}
