package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drivefind/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatalf("expected missing file, got exists for %s", path)
	}
	if cfg.Resolver.MaxParentDepth != 50 {
		t.Fatalf("expected default depth 50, got %d", cfg.Resolver.MaxParentDepth)
	}
	if !cfg.Resolver.ScanFallback {
		t.Fatal("expected scan fallback enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := `
[paths]
drivefs_dir = "` + filepath.Join(dir, "drivefs") + `"
cloud_storage_dir = "` + filepath.Join(dir, "cloud") + `"
log_dir = "~/logs-drivefind-test"

[resolver]
account = " 12345678 "
max_parent_depth = 10
scan_fallback = false
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, path, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || path != cfgPath {
		t.Fatalf("unexpected path resolution: %s exists=%v", path, exists)
	}
	if cfg.Resolver.Account != "12345678" {
		t.Fatalf("account not trimmed: %q", cfg.Resolver.Account)
	}
	if cfg.Resolver.MaxParentDepth != 10 {
		t.Fatalf("depth not applied: %d", cfg.Resolver.MaxParentDepth)
	}
	if cfg.Resolver.ScanFallback {
		t.Fatal("scan fallback should be disabled")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}
	if cfg.Paths.LogDir != filepath.Join(home, "logs-drivefind-test") {
		t.Fatalf("tilde not expanded: %q", cfg.Paths.LogDir)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("sample file should exist")
	}
	if cfg.Resolver.ProbeBufferSize != 256 {
		t.Fatalf("unexpected probe buffer size: %d", cfg.Resolver.ProbeBufferSize)
	}
}

func TestEnsureDirectoriesCreatesLogDir(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.LogDir = filepath.Join(dir, "nested", "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.LogDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("log dir not created: %v", err)
	}
}
