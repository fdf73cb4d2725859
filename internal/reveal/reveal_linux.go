//go:build linux

package reveal

import "path/filepath"

// Linux file managers have no portable select-in-folder verb, so the parent
// directory is opened instead.
func revealArgv(path string) []string {
	return []string{"xdg-open", filepath.Dir(path)}
}
