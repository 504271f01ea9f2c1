package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGameConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", "alliance: red\nstation_loc_id: cs\n", false},
		{"bad alliance", "alliance: green\n", true},
		{"bad preload cell", "preload:\n  - {grid: 3, row: top, col: a, item: cone}\n", true},
		{"malformed yaml", "alliance: [\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chargedup.yaml")
			writeGameConfig(t, path, tt.body)
			if err := checkGameConfig(path); (err != nil) != tt.wantErr {
				t.Errorf("checkGameConfig() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckGameConfigUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := checkGameConfig(""); err != nil {
		t.Fatalf("checkGameConfig() with no user config = %v", err)
	}

	writeGameConfig(t, filepath.Join(home, ".planner", "configs", "chargedup.yaml"), "alliance: green\n")
	if err := checkGameConfig(""); err == nil {
		t.Error("expected error for invalid user game config")
	}
}

func TestCheckGameConfigMissingFile(t *testing.T) {
	if err := checkGameConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing game config")
	}
}
