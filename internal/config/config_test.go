package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/ptable/internal/layout"
	"github.com/san-kum/ptable/internal/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layout != "standard" {
		t.Errorf("expected layout standard, got %s", cfg.Layout)
	}
	if cfg.FadePeriod != 2*time.Second {
		t.Errorf("expected 2s fade, got %v", cfg.FadePeriod)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptable.yaml")
	body := `
fade_period: 500ms
tick_step: 64
mode: electronegativity
range:
  min: 0
  max: 255
rows:
  - {front: 1, back: 1}
  - {front: 2, back: 6}
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FadePeriod != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", cfg.FadePeriod)
	}
	if cfg.DatasetURL == "" {
		t.Error("defaults should fill dataset_url")
	}

	rows, err := cfg.GetRows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1] != (layout.Row{Front: 2, Back: 6}) {
		t.Errorf("unexpected rows %v", rows)
	}

	opts, err := cfg.GetAnimOptions()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Mode != palette.Electronegativity || opts.Step != 64 || opts.Range != palette.FullRange {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptable.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "ocean"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Theme != "ocean" {
		t.Errorf("expected ocean theme, got %s", loaded.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fade", func(c *Config) { c.FadePeriod = 0 }},
		{"zero step", func(c *Config) { c.TickStep = 0 }},
		{"bad range", func(c *Config) { c.Range = palette.Range{Min: 100, Max: 300} }},
		{"bad mode", func(c *Config) { c.Mode = "rainbow" }},
		{"bad layout", func(c *Config) { c.Layout = "nope" }},
		{"negative row", func(c *Config) { c.Rows = []layout.Row{{Front: -1}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != 2 || presets[0] != "expanded" || presets[1] != "standard" {
		t.Errorf("unexpected presets %v", presets)
	}
}
