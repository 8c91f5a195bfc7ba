package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Analysis.MinFrequency != DefaultMinFrequency {
		t.Errorf("MinFrequency = %d, want %d", cfg.Analysis.MinFrequency, DefaultMinFrequency)
	}
	if cfg.Analysis.TopN != DefaultTopN {
		t.Errorf("TopN = %d, want %d", cfg.Analysis.TopN, DefaultTopN)
	}
	if cfg.Chart.Height != DefaultChartHeight {
		t.Errorf("Height = %d, want %d", cfg.Chart.Height, DefaultChartHeight)
	}
	if cfg.HTTP.Timeout != 0 {
		t.Errorf("Timeout = %s, want 0", cfg.HTTP.Timeout)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
http:
  timeout: 15s
analysis:
  min_frequency: 3
  chart: pie
chart:
  height: 400
`)
	t.Setenv("WORDVIZ_CHART", "radar")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.HTTP.Timeout != 15*time.Second {
		t.Errorf("Timeout = %s, want 15s", cfg.HTTP.Timeout)
	}
	if cfg.Analysis.MinFrequency != 3 {
		t.Errorf("MinFrequency = %d, want 3", cfg.Analysis.MinFrequency)
	}
	if cfg.Analysis.Chart != "radar" {
		t.Errorf("Chart = %q, want %q (env wins over file)", cfg.Analysis.Chart, "radar")
	}
	if cfg.Chart.Height != 400 {
		t.Errorf("Height = %d, want 400", cfg.Chart.Height)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "analysis: [unclosed"},
		{name: "non-positive height", content: "chart:\n  height: 0\n"},
		{name: "negative top_n", content: "analysis:\n  top_n: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadConfig() error = nil, want error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() with missing explicit path error = nil, want error")
	}
}
