package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse, got %v", err)
	}

	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig disagree:\n yaml: %+v\n code: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\ntiming:\n  spawn_interval: 2s\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %g, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Timing.SpawnInterval != 2*time.Second {
		t.Errorf("spawn_interval = %v, expected 2s", cfg.Timing.SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != -5 {
		t.Errorf("jump_impulse = %g, expected default -5", cfg.Physics.JumpImpulse)
	}
	if cfg.Board.Height != 640 {
		t.Errorf("board.height = %g, expected default 640", cfg.Board.Height)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero board", "board:\n  width: 0\n"},
		{"bonus every zero", "bonus:\n  every: 0\n"},
		{"scroll to the right", "physics:\n  scroll_velocity: 2\n"},
		{"zero tick rate", "timing:\n  tick_rate: 0\n"},
		{"negative spawn interval", "timing:\n  spawn_interval: -1s\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("board: [unclosed"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax errors should not be reported as validation errors")
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("bonus:\n  every: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Bonus.Every != 5 {
		t.Errorf("bonus.every = %d, expected 5", cfg.Bonus.Every)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("a missing custom config should be an error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadFlappyFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("fallback config should equal the defaults")
	}
}

func TestLoadFlappyLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("physics:\n  gravity: 0.4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if source != filepath.Join("configs", "flappy.yaml") {
		t.Errorf("source = %q, expected local configs file", source)
	}
	if cfg.Physics.Gravity != 0.4 {
		t.Errorf("gravity = %g, expected 0.4", cfg.Physics.Gravity)
	}
}
