package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrNoSnapshots is returned when a snapshot is requested from a workspace
// that has none.
var ErrNoSnapshots = errors.New("no snapshots in workspace")

// Snapshot is a per-epoch training marker stored under snapshots/.
type Snapshot struct {
	Epoch   int       `toml:"epoch"`
	RunID   string    `toml:"run_id"`
	SavedAt time.Time `toml:"saved_at"`
}

// Name returns the snapshot's file stem, e.g. "epoch-003".
func (s Snapshot) Name() string {
	return fmt.Sprintf("epoch-%03d", s.Epoch)
}

// SaveSnapshot writes the snapshot marker to snapshots/epoch-NNN.toml,
// overwriting any marker for the same epoch.
func (w *Workspace) SaveSnapshot(s Snapshot) error {
	dir, err := w.SnapshotDir()
	if err != nil {
		return err
	}
	return saveTOML(filepath.Join(dir, s.Name()+".toml"), s)
}

// Snapshots returns all snapshot markers sorted by epoch.
func (w *Workspace) Snapshots() ([]Snapshot, error) {
	dir := filepath.Join(w.root, "snapshots")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var snaps []Snapshot
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		var s Snapshot
		if _, err := toml.DecodeFile(filepath.Join(dir, e.Name()), &s); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", e.Name(), err)
		}
		snaps = append(snaps, s)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Epoch < snaps[j].Epoch })
	return snaps, nil
}

// Snapshot resolves id to a snapshot marker. An empty id means the latest
// epoch; a numeric id selects that epoch; anything else is matched against
// the snapshot file stem ("epoch-003").
func (w *Workspace) Snapshot(id string) (Snapshot, error) {
	snaps, err := w.Snapshots()
	if err != nil {
		return Snapshot{}, err
	}
	if len(snaps) == 0 {
		return Snapshot{}, ErrNoSnapshots
	}

	if id == "" {
		return snaps[len(snaps)-1], nil
	}
	if epoch, err := strconv.Atoi(id); err == nil {
		for _, s := range snaps {
			if s.Epoch == epoch {
				return s, nil
			}
		}
		return Snapshot{}, fmt.Errorf("snapshot for epoch %d not found", epoch)
	}
	for _, s := range snaps {
		if s.Name() == id {
			return s, nil
		}
	}
	return Snapshot{}, fmt.Errorf("snapshot %q not found", id)
}

// RunRecord summarizes a finished command, stored under results/<run_id>.toml.
type RunRecord struct {
	RunID    string    `toml:"run_id"`
	Command  string    `toml:"command"`
	Model    string    `toml:"model"`
	Epochs   int       `toml:"epochs,omitempty"`
	Snapshot string    `toml:"snapshot,omitempty"`
	Finished time.Time `toml:"finished"`
}

// SaveResult writes the run record to the results directory.
func (w *Workspace) SaveResult(rec RunRecord) error {
	dir, err := w.ResultDir()
	if err != nil {
		return err
	}
	return saveTOML(filepath.Join(dir, rec.RunID+".toml"), rec)
}

func saveTOML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
