// Package config holds runtime configuration: defaults, validation, and the
// pflag.Value adapters that bind enum-typed fields to CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultToken is the package placeholder used by freshly generated
// scaffolds. The rename command replaces it unless --from overrides it.
const DefaultToken = "app"

// DefaultWorkspace is the workspace directory used when -w is not given.
const DefaultWorkspace = "ws/test"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by flag binding in the cli package before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Workspace commands.
	WorkspaceDir string // Default: "ws/test". Set with -w/--workspace.

	// Rename settings.
	OldToken    string // Default: "app". Set with --from.
	NewToken    string // Positional argument of the rename command.
	UseGit      bool   // Enumerate candidates from version control instead of the fixed path list.
	IncludeDocs bool   // Substitute inside documentation files in git mode.
	WordMatch   bool   // Replace whole identifiers only, not raw substrings.
	DryRun      bool   // Report the plan without touching any file.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before the cli package applies flag overrides.
func DefaultConfig() Config {
	return Config{
		WorkspaceDir: DefaultWorkspace,
		OldToken:     DefaultToken,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the workspace
// directory and source token are non-empty.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.WorkspaceDir == "" {
		return errors.New("workspace directory must not be empty")
	}
	if c.OldToken == "" {
		return errors.New("source token must not be empty")
	}
	return nil
}

// ColorModeValue adapts a *ColorMode to the pflag.Value interface so the
// enum can be bound with Flags().Var while rejecting invalid input at parse
// time.
type ColorModeValue struct {
	P *ColorMode
}

func (v *ColorModeValue) String() string { return string(*v.P) }

// Type is the argument name shown in help output.
func (v *ColorModeValue) Type() string { return "auto|always|never" }

func (v *ColorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*v.P = ColorAuto
	case "always":
		*v.P = ColorAlways
	case "never":
		*v.P = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
