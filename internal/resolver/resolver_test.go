package resolver_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"drivefind/internal/config"
	"drivefind/internal/resolver"
	"drivefind/internal/services"
	"drivefind/internal/testsupport"
	"drivefind/internal/xattr"
)

func newResolver(t *testing.T, cfg *config.Config, reader xattr.Reader) *resolver.Resolver {
	t.Helper()
	if reader == nil {
		reader = xattr.MapReader{}
	}
	r, err := resolver.New(cfg, nil, resolver.WithAttributeReader(reader))
	if err != nil {
		t.Fatalf("resolver.New failed: %v", err)
	}
	return r
}

func TestResolveViaDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	mount := testsupport.NewMount(t, cfg.Paths.CloudStorageDir, "user@example.com")
	want := testsupport.MustWriteFile(t, filepath.Join(mount, "My Drive", "FolderA", "file1.txt"))

	dbPath := testsupport.SeedAccount(t, cfg.Paths.DriveFSDir, "100000001")
	testsupport.InsertItems(t, dbPath,
		testsupport.Item{StableID: 1, Title: "My Drive", Folder: true},
		testsupport.Item{StableID: 2, Title: "FolderA", Folder: true, Parent: 1},
		testsupport.Item{StableID: 3, Title: "file1.txt", CloudID: "ID1", Parent: 2},
	)

	result, err := newResolver(t, cfg, nil).Resolve(context.Background(), "ID1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if result == nil || result.Path != want {
		t.Fatalf("got %+v, want path %q", result, want)
	}
	if result.Strategy != resolver.StrategyDatabase {
		t.Fatalf("expected database strategy, got %s", result.Strategy)
	}
	if result.Account != "100000001" {
		t.Fatalf("expected account on database hit, got %+v", result)
	}
}

func TestResolveFallsBackToScan(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	mount := testsupport.NewMount(t, cfg.Paths.CloudStorageDir, "user@example.com")
	want := testsupport.MustWriteFile(t, filepath.Join(mount, "My Drive", "other.txt"))

	reader := xattr.MapReader{}
	reader.SetItemID(want, "ID2")

	result, err := newResolver(t, cfg, reader).Resolve(context.Background(), "ID2")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if result == nil || result.Path != want {
		t.Fatalf("got %+v, want path %q", result, want)
	}
	if result.Strategy != resolver.StrategyScan {
		t.Fatalf("expected scan strategy, got %s", result.Strategy)
	}
}

func TestResolveBothStrategiesMiss(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.NewMount(t, cfg.Paths.CloudStorageDir, "user@example.com")

	result, err := newResolver(t, cfg, nil).Resolve(context.Background(), "IDNONE")
	if err != nil {
		t.Fatalf("not-found must not error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestResolveRejectsMalformedID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	r := newResolver(t, cfg, nil)

	for _, id := range []string{"", "id with spaces", "semi;colon", "path/../escape"} {
		_, err := r.Resolve(context.Background(), id)
		if !errors.Is(err, services.ErrInvalidInput) {
			t.Fatalf("id %q: expected ErrInvalidInput, got %v", id, err)
		}
	}
}

func TestResolveCorruptStoreFallsBack(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxParentDepth(5))
	mount := testsupport.NewMount(t, cfg.Paths.CloudStorageDir, "user@example.com")
	want := testsupport.MustWriteFile(t, filepath.Join(mount, "My Drive", "rescued.txt"))

	dbPath := testsupport.SeedAccount(t, cfg.Paths.DriveFSDir, "100000001")
	testsupport.InsertItems(t, dbPath,
		testsupport.Item{StableID: 1, Title: "LoopA", Folder: true},
		testsupport.Item{StableID: 2, Title: "rescued.txt", CloudID: "ID3", Parent: 1},
	)
	testsupport.LinkParent(t, dbPath, 1, 2)

	reader := xattr.MapReader{}
	reader.SetItemID(want, "ID3")

	result, err := newResolver(t, cfg, reader).Resolve(context.Background(), "ID3")
	if err != nil {
		t.Fatalf("corrupt store must not surface: %v", err)
	}
	if result == nil || result.Path != want || result.Strategy != resolver.StrategyScan {
		t.Fatalf("expected scan rescue, got %+v", result)
	}
}

func TestResolveStaleChainFallsBack(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	mount := testsupport.NewMount(t, cfg.Paths.CloudStorageDir, "user@example.com")

	// The store says FolderA/file1.txt, but the file has moved on disk.
	dbPath := testsupport.SeedAccount(t, cfg.Paths.DriveFSDir, "100000001")
	testsupport.InsertItems(t, dbPath,
		testsupport.Item{StableID: 1, Title: "My Drive", Folder: true},
		testsupport.Item{StableID: 2, Title: "FolderA", Folder: true, Parent: 1},
		testsupport.Item{StableID: 3, Title: "file1.txt", CloudID: "ID4", Parent: 2},
	)
	moved := testsupport.MustWriteFile(t, filepath.Join(mount, "My Drive", "Elsewhere", "file1.txt"))

	reader := xattr.MapReader{}
	reader.SetItemID(moved, "ID4")

	result, err := newResolver(t, cfg, reader).Resolve(context.Background(), "ID4")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if result == nil || result.Path != moved || result.Strategy != resolver.StrategyScan {
		t.Fatalf("expected scan to rescue moved file, got %+v", result)
	}
}

func TestResolveScanFallbackDisabled(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutScanFallback())
	mount := testsupport.NewMount(t, cfg.Paths.CloudStorageDir, "user@example.com")
	hidden := testsupport.MustWriteFile(t, filepath.Join(mount, "My Drive", "only-scan.txt"))

	reader := xattr.MapReader{}
	reader.SetItemID(hidden, "ID5")

	result, err := newResolver(t, cfg, reader).Resolve(context.Background(), "ID5")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if result != nil {
		t.Fatalf("scan ran despite being disabled: %+v", result)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	mount := testsupport.NewMount(t, cfg.Paths.CloudStorageDir, "user@example.com")
	want := testsupport.MustWriteFile(t, filepath.Join(mount, "My Drive", "stable.txt"))

	reader := xattr.MapReader{}
	reader.SetItemID(want, "ID6")

	r := newResolver(t, cfg, reader)
	for i := 0; i < 3; i++ {
		result, err := r.Resolve(context.Background(), "ID6")
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
		if result == nil || result.Path != want {
			t.Fatalf("call %d: got %+v", i, result)
		}
	}
}

func TestValidFileID(t *testing.T) {
	for _, id := range []string{"a", "1AbC_dEf-123", "0123456789"} {
		if !resolver.ValidFileID(id) {
			t.Fatalf("id %q should be valid", id)
		}
	}
	for _, id := range []string{"", " ", "a b", "a/b", "a;b", "ид"} {
		if resolver.ValidFileID(id) {
			t.Fatalf("id %q should be invalid", id)
		}
	}
}
