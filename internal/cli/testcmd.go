package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/workspace"
)

func newTestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Evaluate the configured model from a snapshot",
		Long: `Evaluate the configured model from a training snapshot.

By default the latest snapshot is used. A snapshot can be selected by epoch
number ("2") or by name ("epoch-002"). Arguments are layered the same way
as for train and saved back to config.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runTest(cfg, cmd)
		},
	}
	cmd.Flags().StringP("snapshot", "s", "", "snapshot to evaluate (epoch number or name, default latest)")
	return cmd
}

func runTest(cfg *config.Config, cmd *cobra.Command) error {
	changed := map[string]any{}
	if cmd.Flags().Changed("snapshot") {
		id, _ := cmd.Flags().GetString("snapshot")
		changed["snapshot"] = id
	}

	sess, err := openSession(cfg, "test", map[string]any{"snapshot": ""}, changed)
	if err != nil {
		return err
	}
	defer sess.close()

	id, _ := sess.args["snapshot"].(string)
	snap, err := sess.ws.Snapshot(id)
	if err != nil {
		if errors.Is(err, workspace.ErrNoSnapshots) {
			return fmt.Errorf("nothing to test: %w, run train first", err)
		}
		return err
	}

	fmt.Fprintf(os.Stderr, "In [%s]: testing %s at %s\n", sess.ws, sess.modelName, snap.Name())
	sess.wsLog.Info("run %s: testing %s at %s (trained by run %s)", sess.runID, sess.modelName, snap.Name(), snap.RunID)

	return sess.ws.SaveResult(workspace.RunRecord{
		RunID:    sess.runID,
		Command:  "test",
		Model:    sess.modelName,
		Snapshot: snap.Name(),
		Finished: time.Now(),
	})
}
