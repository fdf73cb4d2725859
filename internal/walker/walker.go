package walker

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"drivefind/internal/logging"
	"drivefind/internal/mounts"
	"drivefind/internal/xattr"
)

const hiddenPrefix = "."

// Walker scans search roots for the entry carrying a target item-id
// attribute. A Walker holds no per-walk state; the visited set and the probe
// buffer live for one Walk call.
type Walker struct {
	probe  *xattr.Probe
	logger *slog.Logger
}

// New builds a Walker probing with probe.
func New(probe *xattr.Probe, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Walker{probe: probe, logger: logger}
}

// Walk explores roots in order, depth-first, until an entry's attribute
// matches target. The traversal uses an explicit work stack so depth is
// bounded by memory rather than the native call stack, and a set of
// canonicalized directory paths so symlink cycles terminate. Hidden entries
// are neither matched nor descended into, and unreadable nodes are skipped.
// An empty path with a nil error means the roots are exhausted without a
// match.
func (w *Walker) Walk(ctx context.Context, roots []mounts.SearchRoot, target string) (string, error) {
	visited := make(map[string]struct{})
	stack := make([]string, 0, 64)

	for _, root := range roots {
		if match, err := w.matches(root.Path, target); err == nil && match {
			return root.Path, nil
		}

		stack = append(stack[:0], root.Path)
		for len(stack) > 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			canonical, err := filepath.EvalSymlinks(dir)
			if err != nil {
				// Dangling link or a directory removed mid-walk.
				continue
			}
			if _, seen := visited[canonical]; seen {
				continue
			}
			visited[canonical] = struct{}{}

			entries, err := os.ReadDir(dir)
			if err != nil {
				w.logger.Debug("directory skipped",
					logging.String(logging.FieldPath, dir),
					logging.Error(err))
				continue
			}

			for _, entry := range entries {
				name := entry.Name()
				if strings.HasPrefix(name, hiddenPrefix) {
					continue
				}
				path := filepath.Join(dir, name)

				match, err := w.matches(path, target)
				if err != nil {
					w.logger.Debug("entry skipped",
						logging.String(logging.FieldPath, path),
						logging.Error(err))
					continue
				}
				if match {
					return path, nil
				}

				if isDir(entry, path) {
					stack = append(stack, path)
				}
			}
		}
	}
	return "", nil
}

func (w *Walker) matches(path, target string) (bool, error) {
	id, ok, err := w.probe.FileID(path)
	if err != nil {
		return false, err
	}
	return ok && id == target, nil
}

// isDir reports whether the entry should be descended into, following
// symlinks to directories; the visited set keeps loops finite.
func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
