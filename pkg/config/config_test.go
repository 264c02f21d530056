package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fastrenamer/fastrenamer/pkg/models"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "negative start",
			mutate:    func(c *Config) { c.Defaults.Start = -1 },
			wantField: "defaults.start",
		},
		{
			name:      "negative padding",
			mutate:    func(c *Config) { c.Defaults.Padding = -3 },
			wantField: "defaults.padding",
		},
		{
			name:      "bad position",
			mutate:    func(c *Config) { c.Defaults.Position = "middle" },
			wantField: "defaults.position",
		},
		{
			name:      "bad output format",
			mutate:    func(c *Config) { c.Output.Format = "xml" },
			wantField: "output.format",
		},
		{
			name:      "bad log format",
			mutate:    func(c *Config) { c.Logging.Format = "yaml" },
			wantField: "logging.format",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *models.ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", ve.Field, tt.wantField)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Defaults.Start = 100
	cfg.Defaults.Padding = 4
	cfg.Output.Format = "json"
	cfg.Logging.Enabled = true
	cfg.Logging.File = "/tmp/fastrenamer.log"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if loaded.Defaults.Start != 100 || loaded.Defaults.Padding != 4 {
		t.Errorf("Defaults = %+v, want start 100 padding 4", loaded.Defaults)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", loaded.Output.Format)
	}
	if !loaded.Logging.Enabled {
		t.Error("Logging.Enabled should survive the round trip")
	}
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("defaults:\n  start: -5\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile() should reject a negative start")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFromFile() should fail for a missing file")
	}
}
