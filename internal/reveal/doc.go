// Package reveal opens a resolved path in the host file manager.
package reveal
