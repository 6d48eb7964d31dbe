package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/model"
	"github.com/backmassage/labbench/internal/workspace"
)

func newConfigCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <model> [--param=value ...]",
		Short: "Configure a model for the workspace",
		Long: `Config binds a registered model and its parameters to the workspace,
saving them to config.toml. Parameters not given keep the model's
declared defaults.

Available models: ` + strings.Join(model.Names(), ", ") + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			name := args[0]
			_, params, err := model.Parse(name, args[1:])
			if err != nil {
				return err
			}

			ws := workspace.New(cfg.WorkspaceDir)
			if err := ws.Set("model", name); err != nil {
				return err
			}
			if err := ws.Set("config", params); err != nil {
				return err
			}
			if err := ws.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "In [%s]: configured %s with %s\n",
				ws, name, formatParams(params))
			return nil
		},
	}
	// Model parameters are not cobra flags; stop flag parsing at the model
	// name so everything after it reaches model.Parse untouched.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// formatParams renders a parameter table deterministically, e.g. "{foo=5}".
func formatParams(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
