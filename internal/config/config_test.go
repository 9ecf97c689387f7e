package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", cfg.PageSize, DefaultPageSize)
	}
	if want := filepath.Join(dir, "assetdeck.db"); cfg.DBPath != want {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())
	t.Setenv(EnvAddr, ":9000")
	t.Setenv(EnvPageSize, "12")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
	if cfg.PageSize != 12 {
		t.Errorf("PageSize = %d, want 12", cfg.PageSize)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadPageSizeRejectsOutOfRange(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())
	for _, bad := range []string{"0", "-3", "100", "nope"} {
		t.Setenv(EnvPageSize, bad)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.PageSize != DefaultPageSize {
			t.Errorf("PageSize with %q = %d, want default %d", bad, cfg.PageSize, DefaultPageSize)
		}
	}
}
