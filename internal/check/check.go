// Package check provides system diagnostics for the check command: git
// availability for rename's git mode, workspace writability, and terminal
// color state.
package check

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/term"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck prints the diagnostics flow and reports overall health. Only a
// missing or unwritable workspace parent is fatal; a missing git merely
// disables rename's git mode.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkWorkspace(cfg, log)
	checkGit(log)
	checkColors(log)
	return ok
}

// checkGit reports whether git is available for rename --git.
func checkGit(log Logger) {
	path, err := exec.LookPath("git")
	if err != nil {
		log.Warn("git not found on PATH; 'rename --git' will not work")
		return
	}
	out, err := exec.Command("git", "--version").Output()
	if err != nil {
		log.Warn("git found at %s but --version failed: %v", path, err)
		return
	}
	log.Success("git: %s", strings.TrimSpace(string(out)))
}

// checkWorkspace verifies the workspace directory can be created and
// written. The probe file is removed afterwards; an empty workspace
// directory left behind is harmless.
func checkWorkspace(cfg *config.Config, log Logger) bool {
	dir := cfg.WorkspaceDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("workspace %s: cannot create: %v", dir, err)
		return false
	}
	probe := filepath.Join(dir, ".labbench-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o644); err != nil {
		log.Error("workspace %s: not writable: %v", dir, err)
		return false
	}
	os.Remove(probe)
	log.Success("workspace: %s is writable", dir)
	return true
}

func checkColors(log Logger) {
	if term.Enabled() {
		log.Success("colors: enabled")
	} else {
		log.Info("colors: disabled")
	}
}
