package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/gofrs/flock"

	"drivefind/internal/config"
	"drivefind/internal/logging"
	"drivefind/internal/metastore"
	"drivefind/internal/mounts"
	"drivefind/internal/services"
	"drivefind/internal/walker"
	"drivefind/internal/xattr"
)

// Strategy names the resolution path that produced a result.
type Strategy string

const (
	StrategyDatabase Strategy = "database"
	StrategyScan     Strategy = "scan"
)

// Result is a successful resolution: the absolute local path and how it was
// found. Account is set for database hits.
type Result struct {
	Path     string   `json:"path"`
	Strategy Strategy `json:"strategy"`
	Account  string   `json:"account,omitempty"`
}

// Drive file IDs are URL-safe base64ish tokens.
var fileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidFileID reports whether id has the shape of a Drive file identifier.
func ValidFileID(id string) bool {
	return fileIDPattern.MatchString(id)
}

// Resolver maps cloud file IDs to local paths, trying the metadata database
// first and falling back to an extended-attribute scan of the mounts.
type Resolver struct {
	cfg        *config.Config
	lookup     *metastore.Lookup
	walk       *walker.Walker
	mountPaths []string
	roots      []mounts.SearchRoot
	lockPath   string
	logger     *slog.Logger
}

// Option customizes resolver construction.
type Option func(*settings)

type settings struct {
	reader xattr.Reader
}

// WithAttributeReader overrides the attribute reader, letting tests run
// against an in-memory fixture instead of the host syscall.
func WithAttributeReader(reader xattr.Reader) Option {
	return func(s *settings) {
		s.reader = reader
	}
}

// New discovers the account stores and mount points named by cfg and builds
// a ready resolver. Discovery failures for individual stores or mounts are
// not errors here; they surface as misses during Resolve.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Resolver, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	applied := settings{reader: xattr.SystemReader()}
	for _, opt := range opts {
		opt(&applied)
	}

	accounts, err := metastore.DiscoverAccounts(cfg.Paths.DriveFSDir)
	if err != nil {
		return nil, fmt.Errorf("discover accounts: %w", err)
	}
	mountPaths, err := mounts.Discover(cfg.Paths.CloudStorageDir)
	if err != nil {
		return nil, fmt.Errorf("discover mounts: %w", err)
	}

	probe := xattr.NewProbe(applied.reader, cfg.Resolver.ProbeBufferSize)

	var lockPath string
	if cfg.Paths.LogDir != "" {
		if err := cfg.EnsureDirectories(); err != nil {
			return nil, err
		}
		lockPath = filepath.Join(cfg.Paths.LogDir, "scan.lock")
	}

	return &Resolver{
		cfg:        cfg,
		lookup:     metastore.NewLookup(accounts, cfg.Resolver.MaxParentDepth, logger),
		walk:       walker.New(probe, logger),
		mountPaths: mountPaths,
		roots:      mounts.SearchRoots(mountPaths),
		lockPath:   lockPath,
		logger:     logger,
	}, nil
}

// Resolve maps fileID to a local path. A nil, nil return means both
// strategies were exhausted without a match; that is a normal outcome, not an
// error. Store unavailability and corruption silently divert to the scan.
func (r *Resolver) Resolve(ctx context.Context, fileID string) (*Result, error) {
	if !ValidFileID(fileID) {
		return nil, services.Wrap(services.ErrInvalidInput, "resolver", "validate",
			fmt.Sprintf("malformed file ID %q", fileID), nil)
	}

	result, err := r.resolveViaDatabase(ctx, fileID)
	if err != nil {
		if !services.Recoverable(err) {
			return nil, err
		}
		logging.WithContext(ctx, r.logger).Debug("database lookup unavailable, falling back to scan",
			logging.String(logging.FieldFileID, fileID),
			logging.Error(err))
	}
	if result != nil {
		return result, nil
	}

	if !r.cfg.Resolver.ScanFallback {
		return nil, nil
	}
	return r.resolveViaScan(ctx, fileID)
}

func (r *Resolver) resolveViaDatabase(ctx context.Context, fileID string) (*Result, error) {
	ctx = services.WithStrategy(ctx, string(StrategyDatabase))
	logger := logging.WithContext(ctx, r.logger)

	chain, err := r.lookup.Find(ctx, fileID, r.cfg.Resolver.Account)
	if err != nil {
		return nil, err
	}
	if chain == nil {
		return nil, nil
	}

	path, ok := mounts.Materialize(r.mountPaths, chain.Segments)
	if !ok {
		// The record exists but its path is not materialized locally; the
		// scan may still find a moved copy.
		logger.Debug("metadata chain not on disk",
			logging.String(logging.FieldFileID, fileID),
			logging.String(logging.FieldAccount, chain.Account.ID))
		return nil, nil
	}

	logger.Debug("resolved via metadata database",
		logging.String(logging.FieldFileID, fileID),
		logging.String(logging.FieldPath, path))
	return &Result{Path: path, Strategy: StrategyDatabase, Account: chain.Account.ID}, nil
}

func (r *Resolver) resolveViaScan(ctx context.Context, fileID string) (*Result, error) {
	ctx = services.WithStrategy(ctx, string(StrategyScan))
	logger := logging.WithContext(ctx, r.logger)

	// Workflow launchers can fire several resolves at once; a full-tree scan
	// of the same mounts from each of them mostly thrashes the page cache,
	// so concurrent invocations take turns.
	if r.lockPath != "" {
		lock := flock.New(r.lockPath)
		if err := lock.Lock(); err != nil {
			logger.Debug("scan lock unavailable, continuing unlocked", logging.Error(err))
		} else {
			defer func() {
				_ = lock.Unlock()
			}()
		}
	}

	path, err := r.walk.Walk(ctx, r.roots, fileID)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	logger.Debug("resolved via filesystem scan",
		logging.String(logging.FieldFileID, fileID),
		logging.String(logging.FieldPath, path))
	return &Result{Path: path, Strategy: StrategyScan}, nil
}
