package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/backmassage/labbench/internal/check"
	"github.com/backmassage/labbench/internal/config"
)

func newCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the environment labbench runs in",
		Long: `Check the environment labbench runs in: git availability, workspace
writability and terminal color support.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			if !check.RunCheck(cfg, log) {
				return errors.New("environment check failed")
			}
			return nil
		},
	}
}
