// Package app wires the sync engine together: configuration, the SQL
// backing store, the syncable directory, per-group workers, and the
// command pipeline. Callers hand it downloaded update batches and it runs
// full cycles against the local store.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/driftline/syncer/internal/config"
	"github.com/driftline/syncer/internal/crypto"
	"github.com/driftline/syncer/internal/engine"
	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/store"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/internal/workers"
	"github.com/driftline/syncer/models"
)

// ErrUnknownStorageDriver is returned when the configured driver names no
// supported database.
var ErrUnknownStorageDriver = errors.New("unknown storage driver")

// App owns the long-lived state of one sync client: the open directory, its
// backing store, the worker set, and the assembled pipeline. One status
// controller is reused across cycles and reset at the start of each.
type App struct {
	backing store.BackingStore
	dir     *syncable.Directory
	workers *workers.WorkerSet
	status  *sessions.StatusController
	routing models.RoutingInfo
	syncer  *engine.Syncer
	log     *logger.Logger
}

// New connects the configured backing store, applies pending migrations,
// loads the directory, and assembles the pipeline with the configured
// resolver policy.
func New(
	ctx context.Context,
	cfg *config.EngineConfig,
	routing models.RoutingInfo,
	cryptographer crypto.Cryptographer,
	log *logger.Logger,
) (*App, error) {
	db, err := connect(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("connect backing store: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate backing store: %w", err)
	}

	backing := store.NewEntryRepository(db, log)
	dir, err := syncable.Open(ctx, backing, log)
	if err != nil {
		return nil, errors.Join(err, backing.Close())
	}

	resolver, err := engine.NewConflictResolver(cfg.Engine.ResolverPolicy, log)
	if err != nil {
		return nil, errors.Join(err, backing.Close())
	}

	log.Info().
		Str("func", "app.New").
		Str("driver", cfg.Storage.Driver).
		Str("policy", cfg.Engine.ResolverPolicy).
		Msg("sync engine assembled")

	return &App{
		backing: backing,
		dir:     dir,
		workers: workers.NewWorkerSet(routing, log),
		status:  sessions.NewStatusController(),
		routing: routing,
		syncer:  engine.NewSyncer(resolver, cryptographer, log),
		log:     log,
	}, nil
}

func connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*store.DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return store.NewConnectSQLite(ctx, cfg, log)
	case "pgx":
		return store.NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}
}

// SyncCycle runs one full verify/apply/build/resolve pass over the batch.
// The returned progress flag tells the caller whether conflict resolution
// produced new local changes, warranting another iteration.
func (a *App) SyncCycle(
	ctx context.Context,
	updates []models.SyncEntity,
	requested models.ModelTypeSet,
) (result models.SyncerError, progress bool) {
	a.status.ResetTransientState()

	session := sessions.NewSyncSession(a.dir, a.routing, a.workers, a.status)
	session.SetDownloadedUpdates(updates, requested)

	result = a.syncer.SyncShare(ctx, session)
	return result, a.status.ConflictsResolved()
}

// Status exposes the cycle counters for telemetry.
func (a *App) Status() *sessions.StatusController { return a.status }

// Directory exposes the open entry store.
func (a *App) Directory() *syncable.Directory { return a.dir }

// Close stops the workers and releases the backing store.
func (a *App) Close() error {
	a.workers.Stop()
	return a.backing.Close()
}
