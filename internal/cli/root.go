// Package cli assembles the labbench command tree: workspace commands
// (config, train, test, clean), the scaffold renamer, and diagnostics.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/display"
	"github.com/backmassage/labbench/internal/logging"
	"github.com/backmassage/labbench/internal/term"
)

// NewRootCommand builds the root command. cfg is shared by reference with
// every subcommand; persistent flags mutate it before RunE fires.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "labbench",
		Short: "Reproducible ML experiment workspaces",
		Long: `Labbench manages experiment workspaces: configure a model, train and
test it with tracked snapshots and per-command logs, and retarget the
scaffold's package placeholder when starting a new project.`,
		Version:       version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.WorkspaceDir = config.NormalizeDirArg(cfg.WorkspaceDir)
			if err := cfg.Validate(); err != nil {
				return err
			}
			term.Configure(cfg.ColorMode)
			if isOperational(cmd) {
				display.PrintBanner()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.WorkspaceDir, "workspace", "w", cfg.WorkspaceDir, "workspace directory")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	pf.Var(&config.ColorModeValue{P: &cfg.ColorMode}, "color", "colored output")
	pf.StringVarP(&cfg.LogFile, "log", "l", "", "append logs to file")

	root.AddCommand(
		newConfigCommand(cfg),
		newTrainCommand(cfg),
		newTestCommand(cfg),
		newCleanCommand(cfg),
		newRenameCommand(cfg),
		newCheckCommand(cfg),
	)
	return root
}

// isOperational filters out the commands where a banner would be noise
// (help, completion, cobra internals).
func isOperational(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return cmd.Runnable() && cmd.Name() != "labbench"
}

// newLogger creates the console logger for a command run.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.New(cfg)
}
