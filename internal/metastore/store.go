package metastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"drivefind/internal/logging"
	"drivefind/internal/services"
)

// Chain is the reconstructed location of one metadata record: the account it
// came from and the name segments from the drive root down to the entry.
type Chain struct {
	Account  Account
	Segments []string
	IsFolder bool
}

// Lookup resolves cloud file IDs against the per-account DriveFS metadata
// databases. It is read-only; the databases belong to the sync client.
type Lookup struct {
	accounts []Account
	maxDepth int
	logger   *slog.Logger
}

// NewLookup builds a Lookup over the given accounts. maxDepth bounds the
// ancestor-chain walk per record.
func NewLookup(accounts []Account, maxDepth int, logger *slog.Logger) *Lookup {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Lookup{accounts: accounts, maxDepth: maxDepth, logger: logger}
}

// Find looks up fileID in each account store in enumeration order and returns
// the first match, skipping trashed records. A non-empty accountHint restricts
// the search to that account directory. A nil, nil return means no store holds
// a matching record; an error tagged ErrStoreUnavailable means no store could
// be read at all.
func (l *Lookup) Find(ctx context.Context, fileID, accountHint string) (*Chain, error) {
	accounts := l.accounts
	if accountHint != "" {
		accounts = nil
		for _, account := range l.accounts {
			if account.ID == accountHint {
				accounts = append(accounts, account)
			}
		}
	}
	if len(accounts) == 0 {
		return nil, services.Wrap(services.ErrStoreUnavailable, "metastore", "find", "no metadata database found", nil)
	}

	var firstErr error
	failed := 0
	for _, account := range accounts {
		chain, err := l.findInStore(ctx, account, fileID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			l.logger.Debug("metadata store skipped",
				logging.String(logging.FieldAccount, account.ID),
				logging.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			failed++
			continue
		}
		if chain != nil {
			return chain, nil
		}
	}
	if failed == len(accounts) {
		return nil, firstErr
	}
	return nil, nil
}

func (l *Lookup) findInStore(ctx context.Context, account Account, fileID string) (*Chain, error) {
	db, err := openStore(account.StorePath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var (
		stableID int64
		isFolder sql.NullInt64
	)
	row := db.QueryRowContext(ctx,
		`SELECT s.stable_id, i.is_folder
         FROM stable_ids s
         JOIN items i ON i.stable_id = s.stable_id
         WHERE s.cloud_id = ? AND i.trashed = 0
         LIMIT 1`, fileID)
	if err := row.Scan(&stableID, &isFolder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, services.Wrap(services.ErrStoreUnavailable, "metastore", "lookup id", account.ID, err)
	}

	segments, err := l.walkParents(ctx, db, account, stableID)
	if err != nil {
		return nil, err
	}
	if segments == nil {
		return nil, nil
	}
	return &Chain{
		Account:  account,
		Segments: segments,
		IsFolder: isFolder.Valid && isFolder.Int64 != 0,
	}, nil
}

// walkParents reconstructs the name chain from the matched record up to the
// drive root. The walk is iterative with an explicit depth bound so a corrupt
// cyclic parent chain degrades to a fallback instead of an unbounded loop or
// a wrong path. A dangling or unnamed ancestor invalidates the whole chain.
func (l *Lookup) walkParents(ctx context.Context, db *sql.DB, account Account, stableID int64) ([]string, error) {
	segments := make([]string, 0, 8)
	current := stableID
	for depth := 0; ; depth++ {
		if depth >= l.maxDepth {
			return nil, services.Wrap(services.ErrStoreCorrupt, "metastore", "walk parents",
				fmt.Sprintf("account %s: ancestor chain exceeds %d levels", account.ID, l.maxDepth), nil)
		}

		var (
			title  sql.NullString
			parent sql.NullInt64
		)
		row := db.QueryRowContext(ctx,
			`SELECT i.local_title, sp.parent_stable_id
             FROM items i
             LEFT JOIN stable_parents sp ON sp.item_stable_id = i.stable_id
             WHERE i.stable_id = ?`, current)
		if err := row.Scan(&title, &parent); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Dangling parent reference; the chain cannot be trusted.
				return nil, nil
			}
			return nil, services.Wrap(services.ErrStoreUnavailable, "metastore", "walk parents", account.ID, err)
		}
		if !title.Valid || title.String == "" {
			return nil, nil
		}
		segments = append(segments, title.String)
		if !parent.Valid {
			break
		}
		current = parent.Int64
	}

	// Collected leaf to root; callers want root to leaf.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments, nil
}

func openStore(path string) (*sql.DB, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, services.Wrap(services.ErrStoreUnavailable, "metastore", "open", path, err)
	}
	if info.IsDir() {
		return nil, services.Wrap(services.ErrStoreUnavailable, "metastore", "open",
			fmt.Sprintf("%s is a directory", path), nil)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, services.Wrap(services.ErrStoreUnavailable, "metastore", "open", path, err)
	}

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 1000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, services.Wrap(services.ErrStoreUnavailable, "metastore", "open",
				fmt.Sprintf("apply pragma %q", pragma), execErr)
		}
	}
	return db, nil
}
