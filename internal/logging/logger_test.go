package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/labbench/internal/config"
)

func TestNew_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := New(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNew_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "labbench.log")
	l, err := New(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestNewFileOnly_Appends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "train.log")

	l, err := NewFileOnly(path)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("first run")
	l.Close()

	// A second logger for the same name must append, not truncate.
	l, err = NewFileOnly(path)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("second run")
	l.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("first run")) || !bytes.Contains(b, []byte("second run")) {
		t.Errorf("log file content: %s", string(b))
	}
	if got := bytes.Count(b, []byte("\n")); got != 2 {
		t.Errorf("got %d lines, want 2", got)
	}
}
