package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// NewMount creates a GoogleDrive-<name> mount point with a My Drive root
// under the CloudStorage directory and returns the mount path.
func NewMount(t testing.TB, cloudStorageDir, name string) string {
	t.Helper()

	mount := filepath.Join(cloudStorageDir, "GoogleDrive-"+name)
	MustMkdirAll(t, filepath.Join(mount, "My Drive"))
	return mount
}

// MustMkdirAll creates a directory tree, failing the test on error.
func MustMkdirAll(t testing.TB, dir string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	return dir
}

// MustWriteFile creates a file with placeholder content, failing the test on
// error, and returns its path.
func MustWriteFile(t testing.TB, path string) string {
	t.Helper()

	MustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte("drive content\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// MustSymlink creates a symbolic link, failing the test on error.
func MustSymlink(t testing.TB, target, link string) {
	t.Helper()

	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink %s -> %s: %v", link, target, err)
	}
}
