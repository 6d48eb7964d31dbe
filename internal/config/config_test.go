package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "ws/test", "ws/test"},
		{"single trailing slash", "ws/test/", "ws/test"},
		{"multiple trailing slashes", "ws/test///", "ws/test"},
		{"root path", "/", "/"},
		{"absolute path", "/srv/experiments", "/srv/experiments"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkspaceDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty workspace directory")
	}

	cfg = DefaultConfig()
	cfg.OldToken = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty source token")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OldToken != "app" {
		t.Errorf("OldToken = %q, want %q", cfg.OldToken, "app")
	}
	if cfg.WorkspaceDir != "ws/test" {
		t.Errorf("WorkspaceDir = %q, want %q", cfg.WorkspaceDir, "ws/test")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestColorModeValue_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"ALWAYS", ColorAlways, false},
		{"rainbow", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mode := ColorAuto
			v := &ColorModeValue{P: &mode}
			err := v.Set(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && mode != tt.want {
				t.Errorf("Set(%q) -> %q, want %q", tt.in, mode, tt.want)
			}
		})
	}
}
