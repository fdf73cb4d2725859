package metastore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MetadataDBName is the filename DriveFS uses for each account's metadata
// database.
const MetadataDBName = "metadata_sqlite_db"

// Account identifies one DriveFS profile directory holding a metadata
// database. ID is the directory name, typically the numeric account ID.
type Account struct {
	ID        string
	StorePath string
}

// DiscoverAccounts scans the DriveFS data directory for account directories
// that contain a metadata database. Results come back in sorted directory
// order, which fixes the enumeration order lookups use. A missing data
// directory yields an empty slice, not an error.
func DiscoverAccounts(driveFSDir string) ([]Account, error) {
	entries, err := os.ReadDir(driveFSDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, nil
		}
		return nil, fmt.Errorf("read drivefs dir: %w", err)
	}

	var accounts []Account
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		storePath := filepath.Join(driveFSDir, entry.Name(), MetadataDBName)
		info, err := os.Stat(storePath)
		if err != nil || info.IsDir() {
			continue
		}
		accounts = append(accounts, Account{ID: entry.Name(), StorePath: storePath})
	}
	return accounts, nil
}
