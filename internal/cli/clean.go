package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/workspace"
)

func newCleanCommand(cfg *config.Config) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove training snapshots from the workspace",
		Long: `Remove training snapshots from the workspace.

The configuration and logs are kept, so the model stays configured. With
--all the whole workspace directory is removed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ws := workspace.New(cfg.WorkspaceDir)
			if err := ws.Clean(all); err != nil {
				return err
			}
			if all {
				fmt.Fprintf(os.Stderr, "In [%s]: removed workspace\n", ws)
			} else {
				fmt.Fprintf(os.Stderr, "In [%s]: removed snapshots\n", ws)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "remove the entire workspace, not just snapshots")
	return cmd
}
