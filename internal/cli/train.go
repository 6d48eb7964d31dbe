package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/model"
	"github.com/backmassage/labbench/internal/workspace"
)

const defaultEpochs = 10

func newTrainCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the configured model",
		Long: `Train the configured model, writing one snapshot per epoch.

Arguments are layered: the command defaults, then whatever the last train
run saved into config.toml, then flags set on this invocation. The effective
values are saved back, so a plain "labbench train" repeats the last run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runTrain(cfg, cmd)
		},
	}
	cmd.Flags().IntP("epochs", "N", defaultEpochs, "number of epochs to train")
	return cmd
}

func runTrain(cfg *config.Config, cmd *cobra.Command) error {
	changed := map[string]any{}
	if cmd.Flags().Changed("epochs") {
		n, _ := cmd.Flags().GetInt("epochs")
		changed["epochs"] = n
	}

	sess, err := openSession(cfg, "train", map[string]any{"epochs": defaultEpochs}, changed)
	if err != nil {
		return err
	}
	defer sess.close()

	epochs, err := model.Int(sess.args, "epochs", defaultEpochs)
	if err != nil {
		return err
	}
	if epochs < 1 {
		return fmt.Errorf("epochs must be at least 1, got %d", epochs)
	}

	fmt.Fprintf(os.Stderr, "In [%s]: training %s for %d epochs\n", sess.ws, sess.modelName, epochs)
	sess.wsLog.Info("run %s: training %s for %d epochs", sess.runID, sess.modelName, epochs)

	for epoch := 1; epoch <= epochs; epoch++ {
		snap := workspace.Snapshot{
			Epoch:   epoch,
			RunID:   sess.runID,
			SavedAt: time.Now(),
		}
		if err := sess.ws.SaveSnapshot(snap); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		sess.wsLog.Info("run %s: epoch %d/%d done, snapshot %s", sess.runID, epoch, epochs, snap.Name())
	}

	return sess.ws.SaveResult(workspace.RunRecord{
		RunID:    sess.runID,
		Command:  "train",
		Model:    sess.modelName,
		Epochs:   epochs,
		Finished: time.Now(),
	})
}
