package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saidan", "config.yaml")

	cfg, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not created: %v", err)
	}
	if !cfg.Core.Shred.Confirm {
		t.Error("default config should enable confirmation")
	}
	if cfg.History.Include.Period != 365 {
		t.Errorf("default period = %d, want 365", cfg.History.Include.Period)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `core:
  shred:
    confirm: false
    verbose: false
  protected_paths:
    - /srv/data
history:
  include:
    within_days: 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	if cfg.Core.Shred.Confirm {
		t.Error("confirm should be overridden to false")
	}
	if len(cfg.Core.ProtectedPaths) != 1 || cfg.Core.ProtectedPaths[0] != "/srv/data" {
		t.Errorf("protected_paths = %v, want [/srv/data]", cfg.Core.ProtectedPaths)
	}
	if cfg.History.Include.Period != 30 {
		t.Errorf("period = %d, want 30", cfg.History.Include.Period)
	}
	// Untouched sections keep their defaults
	if cfg.History.Exclude.Size.Max != "10GB" {
		t.Errorf("exclude size max = %q, want default 10GB", cfg.History.Exclude.Size.Max)
	}
}

func TestParseRejectsInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `history:
  exclude:
    size:
      max: banana
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Parse(path); err == nil {
		t.Fatal("Parse() error = nil, want validation failure")
	}
}

func TestValidSizeFormats(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"", true},
		{"0KB", true},
		{"10MB", true},
		{"1gb", true},
		{"100", false},
		{"KB", false},
		{"ten MB", false},
	}

	cfg := NewDefaultConfig()
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg.History.Exclude.Size.Max = tt.value
			err := cfg.validateConfig()
			if (err == nil) != tt.valid {
				t.Errorf("validateConfig() with max=%q error = %v, want valid=%v", tt.value, err, tt.valid)
			}
		})
	}
}
