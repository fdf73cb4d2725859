package mounts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// mountPrefix marks Drive for Desktop mount points under CloudStorage.
const mountPrefix = "GoogleDrive-"

const hiddenPrefix = "."

// Rank orders search roots: the mirrored My Drive tree is where nearly all
// lookups land, shared drives next, the rest of the mount last.
type Rank int

const (
	RankPrimary Rank = iota
	RankShared
	RankOther
)

func (r Rank) String() string {
	switch r {
	case RankPrimary:
		return "primary"
	case RankShared:
		return "shared"
	default:
		return "other"
	}
}

// SearchRoot is one traversal starting point with its priority rank.
type SearchRoot struct {
	Path string
	Rank Rank
}

var primaryRootNames = []string{"マイドライブ", "My Drive"}

var sharedContainerNames = []string{"共有ドライブ", "Shared drives"}

// rootPrefixes are the directories a drive root name may be nested under.
// The empty prefix must come first: My Drive roots are direct children of the
// mount point, while computer and shared-drive roots sit under a container.
var rootPrefixes = []string{
	"",
	"その他のパソコン",
	"Computers",
	"共有ドライブ",
	"Shared drives",
}

// Discover returns the Drive mount points under cloudStorageDir in sorted
// order. A missing or unreadable CloudStorage directory yields an empty
// slice, not an error.
func Discover(cloudStorageDir string) ([]string, error) {
	entries, err := os.ReadDir(cloudStorageDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cloud storage dir: %w", err)
	}

	var mounts []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), mountPrefix) {
			continue
		}
		mounts = append(mounts, filepath.Join(cloudStorageDir, entry.Name()))
	}
	return mounts, nil
}

// SearchRoots ranks traversal starting points across the given mounts:
// primary mirrored roots first, shared-drive containers next, then each mount
// itself to catch entries outside the well-known roots. Within one rank,
// mount order is preserved.
func SearchRoots(mountPaths []string) []SearchRoot {
	var roots []SearchRoot
	for _, mount := range mountPaths {
		for _, name := range primaryRootNames {
			if dir, ok := locateChild(mount, name); ok {
				roots = append(roots, SearchRoot{Path: dir, Rank: RankPrimary})
			}
		}
	}
	for _, mount := range mountPaths {
		for _, name := range sharedContainerNames {
			if dir, ok := locateChild(mount, name); ok {
				roots = append(roots, SearchRoot{Path: dir, Rank: RankShared})
			}
		}
	}
	for _, mount := range mountPaths {
		roots = append(roots, SearchRoot{Path: mount, Rank: RankOther})
	}
	return roots
}

// Materialize locates a reconstructed segment chain on disk. The first
// segment is the drive root name, which may be a direct child of a mount
// point or nested under one of the known container prefixes. The first
// existing candidate across mounts and prefixes wins.
func Materialize(mountPaths []string, segments []string) (string, bool) {
	if len(segments) == 0 {
		return "", false
	}
	for _, mount := range mountPaths {
		for _, prefix := range rootPrefixes {
			base := mount
			if prefix != "" {
				dir, ok := locateChild(mount, prefix)
				if !ok {
					continue
				}
				base = dir
			}
			if path, ok := locateSegments(base, segments); ok {
				return path, true
			}
		}
	}
	return "", false
}

func locateSegments(base string, segments []string) (string, bool) {
	current := base
	for _, segment := range segments {
		next, ok := locateChild(current, segment)
		if !ok {
			return "", false
		}
		current = next
	}
	return current, true
}

// locateChild finds name inside dir, tolerating Unicode normalization
// differences: the metadata store carries NFC names while APFS and HFS+
// store NFD. The direct join is tried first to avoid a directory listing.
func locateChild(dir, name string) (string, bool) {
	candidate := filepath.Join(dir, name)
	if _, err := os.Lstat(candidate); err == nil {
		return candidate, true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	want := norm.NFC.String(name)
	for _, entry := range entries {
		if norm.NFC.String(entry.Name()) == want {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}
