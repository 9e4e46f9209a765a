package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-cake/internal/config"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.TickRate != 60 || cfg.Seed != 0 {
		t.Errorf("TickRate = %d, Seed = %d; expected 60 and 0", cfg.TickRate, cfg.Seed)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, config.DefaultFlappyConfig(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
}
