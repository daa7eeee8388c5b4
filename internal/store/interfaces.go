package store

//go:generate mockgen -source=interfaces.go -destination=../mock/backing_store_mock.go -package=mock

import (
	"context"

	"github.com/driftline/syncer/models"
)

// BackingStore persists the directory's entry table. The directory loads
// every record once at open time and flushes dirty kernels back through
// SaveEntries; the store never reads concurrently with the directory's
// in-memory state.
type BackingStore interface {
	// Load returns every persisted entry record.
	Load(ctx context.Context) ([]EntryRecord, error)

	// SaveEntries upserts the given records. A record's ID is its primary
	// key; existing rows are overwritten in full.
	SaveEntries(ctx context.Context, records []EntryRecord) error

	// DeleteEntries removes the rows for the given IDs. Missing rows are
	// not an error.
	DeleteEntries(ctx context.Context, ids []models.ID) error

	// Close releases the underlying database handle.
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The sqlite store has no transient failure modes and always
// reports NonRetryable; the postgres store inspects pgconn error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
