package testsupport

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Item describes one record spread across the DriveFS metadata tables.
type Item struct {
	StableID int64
	CloudID  string // empty when the record has no cloud mapping
	Title    string
	Parent   int64 // 0 marks a drive root (no parent row)
	Folder   bool
	Trashed  bool
}

// SeedAccount creates a DriveFS account directory with an empty
// metadata_sqlite_db carrying the DriveFS schema, returning the db path.
func SeedAccount(t testing.TB, driveFSDir, accountID string) string {
	t.Helper()

	accountDir := filepath.Join(driveFSDir, accountID)
	if err := os.MkdirAll(accountDir, 0o755); err != nil {
		t.Fatalf("mkdir account dir: %v", err)
	}
	dbPath := filepath.Join(accountDir, "metadata_sqlite_db")

	db := openSeedDB(t, dbPath)
	defer db.Close()

	schema := []string{
		`CREATE TABLE IF NOT EXISTS items (
            stable_id INTEGER PRIMARY KEY,
            local_title TEXT,
            is_folder INTEGER NOT NULL DEFAULT 0,
            trashed INTEGER NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS stable_ids (
            cloud_id TEXT NOT NULL,
            stable_id INTEGER NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS stable_parents (
            item_stable_id INTEGER NOT NULL,
            parent_stable_id INTEGER NOT NULL
        )`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return dbPath
}

// InsertItems adds records to a seeded metadata database.
func InsertItems(t testing.TB, dbPath string, items ...Item) {
	t.Helper()

	db := openSeedDB(t, dbPath)
	defer db.Close()

	for _, item := range items {
		if _, err := db.Exec(
			`INSERT INTO items (stable_id, local_title, is_folder, trashed) VALUES (?, ?, ?, ?)`,
			item.StableID, item.Title, boolToInt(item.Folder), boolToInt(item.Trashed),
		); err != nil {
			t.Fatalf("insert item %d: %v", item.StableID, err)
		}
		if item.CloudID != "" {
			if _, err := db.Exec(
				`INSERT INTO stable_ids (cloud_id, stable_id) VALUES (?, ?)`,
				item.CloudID, item.StableID,
			); err != nil {
				t.Fatalf("insert cloud id %q: %v", item.CloudID, err)
			}
		}
		if item.Parent != 0 {
			if _, err := db.Exec(
				`INSERT INTO stable_parents (item_stable_id, parent_stable_id) VALUES (?, ?)`,
				item.StableID, item.Parent,
			); err != nil {
				t.Fatalf("insert parent of %d: %v", item.StableID, err)
			}
		}
	}
}

// LinkParent inserts a bare parent edge, bypassing the Parent convention in
// Item. Used to build deliberately cyclic or dangling chains.
func LinkParent(t testing.TB, dbPath string, child, parent int64) {
	t.Helper()

	db := openSeedDB(t, dbPath)
	defer db.Close()

	if _, err := db.Exec(
		`INSERT INTO stable_parents (item_stable_id, parent_stable_id) VALUES (?, ?)`,
		child, parent,
	); err != nil {
		t.Fatalf("link parent %d -> %d: %v", child, parent, err)
	}
}

func openSeedDB(t testing.TB, dbPath string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	return db
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
