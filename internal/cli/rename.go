package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/display"
	"github.com/backmassage/labbench/internal/rename"
)

func newRenameCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <new_name>",
		Short: "Replace the scaffold package token throughout the tree",
		Long: `Rename rewrites every occurrence of the placeholder token (default
"app") in the candidate file set and relocates the token-named package
directory and its docs page. By default candidates come from the fixed
scaffold paths (docs/source, the package dir, tests, top-level dotfiles
and the Makefile); with --git they come from version control instead.

Failures are collected per file and reported before exiting non-zero;
renaming a token to itself is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.NewToken = args[0]
			if cfg.NewToken == "" {
				return rename.ErrEmptyToken
			}
			cmd.SilenceUsage = true

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			rep, err := rename.New(cfg, log, ".").Run()
			if err != nil {
				return err
			}
			if rep.Failed() {
				return fmt.Errorf("rename incomplete: %s failed", display.FormatCount(len(rep.Errors), "path"))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&cfg.OldToken, "from", cfg.OldToken, "token to replace")
	fl.BoolVar(&cfg.UseGit, "git", false, "take candidates from version control instead of the fixed scaffold paths")
	fl.BoolVar(&cfg.IncludeDocs, "docs", false, "also substitute inside documentation files (git mode)")
	fl.BoolVar(&cfg.WordMatch, "word", false, "replace whole identifiers only, not raw substrings")
	fl.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "preview only; do not modify any file")
	return cmd
}
