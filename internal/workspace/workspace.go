// Package workspace manages experiment workspaces: a directory holding a
// model configuration (config.toml) plus training and testing state in
// logs/, snapshots/ and results/ subdirectories. Subdirectories are created
// lazily on first access so that merely constructing a Workspace never
// touches the filesystem.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/labbench/internal/logging"
)

// ErrNotConfigured is returned when a workspace command runs before any
// model has been configured.
var ErrNotConfigured = errors.New("workspace is not configured")

const configFile = "config.toml"

// Workspace is rooted at a directory path. The configuration is loaded
// lazily and cached; Save persists the cached state.
type Workspace struct {
	root    string
	config  map[string]any
	loaded  bool
	loggers map[string]*logging.Logger
}

// New returns a Workspace rooted at root. Nothing is created until a
// directory or the configuration is first accessed.
func New(root string) *Workspace {
	return &Workspace{root: root, loggers: make(map[string]*logging.Logger)}
}

func (w *Workspace) String() string { return w.root }

// Root ensures the workspace directory exists and returns its path.
func (w *Workspace) Root() (string, error) {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return "", err
	}
	return w.root, nil
}

func (w *Workspace) ensureDir(name string) (string, error) {
	dir := filepath.Join(w.root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// LogDir returns the logs/ directory, creating it if needed.
func (w *Workspace) LogDir() (string, error) { return w.ensureDir("logs") }

// SnapshotDir returns the snapshots/ directory, creating it if needed.
func (w *Workspace) SnapshotDir() (string, error) { return w.ensureDir("snapshots") }

// ResultDir returns the results/ directory, creating it if needed.
func (w *Workspace) ResultDir() (string, error) { return w.ensureDir("results") }

// ConfigPath returns the path of the workspace configuration file.
func (w *Workspace) ConfigPath() string { return filepath.Join(w.root, configFile) }

// IsConfigured reports whether config.toml exists.
func (w *Workspace) IsConfigured() bool {
	_, err := os.Stat(w.ConfigPath())
	return err == nil
}

// Config returns the workspace configuration, loading it on first access.
// A missing config.toml loads as an empty configuration, not an error.
func (w *Workspace) Config() (map[string]any, error) {
	if w.loaded {
		return w.config, nil
	}
	cfg, err := loadConfig(w.ConfigPath())
	if err != nil {
		return nil, err
	}
	w.config = cfg
	w.loaded = true
	return cfg, nil
}

// Set stores a single top-level configuration value in memory.
func (w *Workspace) Set(key string, value any) error {
	cfg, err := w.Config()
	if err != nil {
		return err
	}
	cfg[key] = value
	Unfold(cfg)
	return nil
}

// Update merges values into the named configuration section in memory.
// Dotted keys are unfolded into nested tables.
func (w *Workspace) Update(section string, values map[string]any) error {
	cfg, err := w.Config()
	if err != nil {
		return err
	}
	sub, ok := cfg[section].(map[string]any)
	if !ok {
		sub = make(map[string]any)
		cfg[section] = sub
	}
	for k, v := range values {
		sub[k] = v
	}
	Unfold(cfg)
	return nil
}

// Save persists the in-memory configuration to config.toml.
func (w *Workspace) Save() error {
	cfg, err := w.Config()
	if err != nil {
		return err
	}
	if _, err := w.Root(); err != nil {
		return err
	}
	return saveConfig(w.ConfigPath(), cfg)
}

// ModelName returns the configured model name, or ErrNotConfigured when the
// workspace has no configuration or the model entry is missing.
func (w *Workspace) ModelName() (string, error) {
	if !w.IsConfigured() {
		return "", fmt.Errorf("%w: %s does not exist", ErrNotConfigured, w.ConfigPath())
	}
	cfg, err := w.Config()
	if err != nil {
		return "", err
	}
	name, ok := cfg["model"].(string)
	if !ok || name == "" {
		return "", fmt.Errorf("%w: config.toml is incomplete", ErrNotConfigured)
	}
	return name, nil
}

// ModelParams returns the configured model parameter table. Missing params
// yield an empty table so models fall back to their declared defaults.
func (w *Workspace) ModelParams() (map[string]any, error) {
	cfg, err := w.Config()
	if err != nil {
		return nil, err
	}
	params, ok := cfg["config"].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return params, nil
}

// Section returns a copy of the named configuration section, or an empty
// table when it does not exist.
func (w *Workspace) Section(name string) (map[string]any, error) {
	cfg, err := w.Config()
	if err != nil {
		return nil, err
	}
	sub, ok := cfg[name].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(sub))
	for k, v := range sub {
		out[k] = v
	}
	return out, nil
}

// Logger returns a file logger appending to logs/<name>.log. The same
// instance is returned for repeated calls with the same name.
func (w *Workspace) Logger(name string) (*logging.Logger, error) {
	if l, ok := w.loggers[name]; ok {
		return l, nil
	}
	dir, err := w.LogDir()
	if err != nil {
		return nil, err
	}
	l, err := logging.NewFileOnly(filepath.Join(dir, name+".log"))
	if err != nil {
		return nil, err
	}
	w.loggers[name] = l
	return l, nil
}

// Close closes any file loggers opened through Logger.
func (w *Workspace) Close() error {
	var first error
	for name, l := range w.loggers {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
		delete(w.loggers, name)
	}
	return first
}

// Clean removes all snapshots and recreates the empty snapshots directory.
// With all set, the entire workspace is removed instead.
func (w *Workspace) Clean(all bool) error {
	if all {
		return os.RemoveAll(w.root)
	}
	if err := os.RemoveAll(filepath.Join(w.root, "snapshots")); err != nil {
		return err
	}
	_, err := w.SnapshotDir()
	return err
}
