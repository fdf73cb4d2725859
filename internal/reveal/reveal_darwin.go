//go:build darwin

package reveal

// open -R selects the file in a Finder window.
func revealArgv(path string) []string {
	return []string{"open", "-R", path}
}
