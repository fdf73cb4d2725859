// Package metastore queries the per-account metadata databases maintained by
// Google Drive for Desktop.
//
// Each account directory under the DriveFS data dir holds a metadata_sqlite_db
// mapping cloud IDs to stable IDs (stable_ids), items to their display names
// (items), and items to their parents (stable_parents). Find maps a cloud ID
// to its stable ID, then walks the parent chain iteratively under an explicit
// depth bound to rebuild the name segments from the drive root to the entry.
//
// The databases are owned and mutated by the sync client; this package opens
// them read-only and treats every store failure as a recoverable condition
// (the resolver falls back to the filesystem scan).
package metastore
