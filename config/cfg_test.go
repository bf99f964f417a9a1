package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/guidegen/core/layout"
	"github.com/gaurav-prasanna/guidegen/core/render"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Output.FileName != render.DefaultFileName {
		t.Errorf("file name = %q, want %q", cfg.Output.FileName, render.DefaultFileName)
	}
	if cfg.NumberingMode() != render.NumberingFixed {
		t.Errorf("numbering = %v, want fixed", cfg.NumberingMode())
	}
	if cfg.LayoutBrand() != layout.DefaultBrand() {
		t.Errorf("brand = %+v, want the default brand", cfg.LayoutBrand())
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidegen.yaml")
	content := `output:
  dir: /tmp/guides
numbering: derived
brand:
  version: Version 2.0
logging:
  console:
    level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Output.Dir != "/tmp/guides" {
		t.Errorf("output dir = %q", cfg.Output.Dir)
	}
	if cfg.Output.FileName != render.DefaultFileName {
		t.Errorf("file name should keep its default, got %q", cfg.Output.FileName)
	}
	if cfg.NumberingMode() != render.NumberingDerived {
		t.Errorf("numbering = %v, want derived", cfg.NumberingMode())
	}
	if cfg.Brand.Version != "Version 2.0" || cfg.Brand.Name != "Embed Pro" {
		t.Errorf("brand overlay wrong: %+v", cfg.Brand)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"numbering", "numbering: sometimes\n", "numbering"},
		{"level", "logging:\n  console:\n    level: loud\n", "logging level"},
		{"unknown field", "colour: red\n", "colour"},
		{"empty file name", "output:\n  file_name: \"\"\n", "file name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadConfiguration(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfiguration() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	again, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("loading dumped config: %v\n%s", err, data)
	}
	if *again != *cfg {
		t.Errorf("round trip changed the configuration:\n%+v\n%+v", again, cfg)
	}
}

func TestPrepareLogger(t *testing.T) {
	for _, level := range []string{"none", "normal", "debug"} {
		conf := LoggingConfig{ConsoleLogger: LoggerConfig{Level: level}}
		log := conf.Prepare()
		if log == nil {
			t.Fatalf("Prepare(%q) returned nil", level)
		}
		if got := log.Core().Enabled(-1); got != (level == "debug") {
			t.Errorf("%q: debug enabled = %v", level, got)
		}
	}
}
