package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var planner PlannerConfig
	if err := load("planner.yaml", "", defaultPlannerYAML, &planner); err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if planner != DefaultPlannerConfig() {
		t.Errorf("embedded planner.yaml = %+v, expected %+v", planner, DefaultPlannerConfig())
	}

	cu := ChargedUpConfig{}
	if err := load("chargedup.yaml", "", defaultChargedUpYAML, &cu); err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	def := DefaultChargedUpConfig()
	if cu.Alliance != def.Alliance || cu.StationLocID != def.StationLocID ||
		cu.EndAuto != def.EndAuto || cu.EndGame != def.EndGame || cu.LegacyRowLinks {
		t.Errorf("embedded chargedup.yaml = %+v, expected %+v", cu, def)
	}
}

func TestLoadPlannerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := "robot:\n  velocity: 1.5\nsimulation:\n  animation_rate: 60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlanner(path)
	if err != nil {
		t.Fatalf("LoadPlanner() failed: %v", err)
	}
	if cfg.Robot.Velocity != 1.5 {
		t.Errorf("Velocity = %v, expected 1.5", cfg.Robot.Velocity)
	}
	if cfg.Simulation.AnimationRate != 60 {
		t.Errorf("AnimationRate = %v, expected 60", cfg.Simulation.AnimationRate)
	}
	// Missing keys keep their defaults
	if cfg.Simulation.DefaultGame != "chargedup" || cfg.Playback.FPS != 30 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadPlannerMissingCustomPath(t *testing.T) {
	_, err := LoadPlanner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadChargedUpCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chargedup.yaml")
	content := `
alliance: red
station_loc_id: S
legacy_row_links: true
preload:
  - alliance: red
    grid: 1
    row: top
    col: a
    item: cone
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChargedUp(path)
	if err != nil {
		t.Fatalf("LoadChargedUp() failed: %v", err)
	}
	if cfg.Alliance != "red" || cfg.StationLocID != "S" || !cfg.LegacyRowLinks {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.EndAuto.Points != 12 {
		t.Errorf("EndAuto should keep its default, got %+v", cfg.EndAuto)
	}
	if len(cfg.Preload) != 1 || cfg.Preload[0].Grid != 1 {
		t.Errorf("Preload = %+v", cfg.Preload)
	}
}

func TestChargedUpValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChargedUpConfig)
		wantErr bool
	}{
		{"defaults", func(*ChargedUpConfig) {}, false},
		{"bad alliance", func(c *ChargedUpConfig) { c.Alliance = "green" }, true},
		{"bad grid", func(c *ChargedUpConfig) {
			c.Preload = []CellConfig{{Grid: 3, Row: "top", Col: "a", Item: "cone"}}
		}, true},
		{"bad row", func(c *ChargedUpConfig) {
			c.Preload = []CellConfig{{Grid: 0, Row: "upper", Col: "a", Item: "cone"}}
		}, true},
		{"bad column", func(c *ChargedUpConfig) {
			c.Preload = []CellConfig{{Grid: 0, Row: "top", Col: "d", Item: "cone"}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultChargedUpConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAwardWindowContains(t *testing.T) {
	w := AwardWindow{Start: 15, End: 18, Points: 12}

	tests := []struct {
		t        float64
		expected bool
	}{
		{15, false},
		{15.01, true},
		{16, true},
		{17.99, true},
		{18, false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.t); got != tt.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tt.t, got, tt.expected)
		}
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/runs.db")
	if err != nil || got != "/tmp/runs.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.planner/runs.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".planner", "runs.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
}
