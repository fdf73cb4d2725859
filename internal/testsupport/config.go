package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"drivefind/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The DriveFS and CloudStorage directories are created empty; tests populate
// them with SeedAccount and NewMount.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DriveFSDir = filepath.Join(base, "drivefs")
	cfg.Paths.CloudStorageDir = filepath.Join(base, "cloudstorage")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, dir := range []string{cfg.Paths.DriveFSDir, cfg.Paths.CloudStorageDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithAccountHint restricts the database lookup to one account directory.
func WithAccountHint(id string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Resolver.Account = id
	}
}

// WithMaxParentDepth overrides the ancestor-chain depth bound.
func WithMaxParentDepth(depth int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Resolver.MaxParentDepth = depth
	}
}

// WithoutScanFallback disables the filesystem scan strategy.
func WithoutScanFallback() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Resolver.ScanFallback = false
	}
}
