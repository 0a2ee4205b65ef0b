package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, "snapshot: week9.json\nout: digest.txt\nmatchup_cap: 5\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Snapshot != "week9.json" {
		t.Errorf("snapshot = %q, want %q", cfg.Snapshot, "week9.json")
	}
	if cfg.Out != "digest.txt" {
		t.Errorf("out = %q, want %q", cfg.Out, "digest.txt")
	}
	if cfg.MatchupCap != 5 {
		t.Errorf("matchup_cap = %d, want 5", cfg.MatchupCap)
	}
}

// Unset fields fall back to the defaults rather than zero values.
func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, "out: digest.txt\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg.Snapshot != def.Snapshot {
		t.Errorf("snapshot = %q, want default %q", cfg.Snapshot, def.Snapshot)
	}
	if cfg.Players != def.Players {
		t.Errorf("players = %q, want default %q", cfg.Players, def.Players)
	}
	if cfg.MatchupCap != def.MatchupCap || cfg.TrendingCap != def.TrendingCap {
		t.Errorf("caps = %d/%d, want defaults %d/%d", cfg.MatchupCap, cfg.TrendingCap, def.MatchupCap, def.TrendingCap)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "snapshot: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
