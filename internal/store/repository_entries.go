package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/models"
)

// entryColumns lists the persisted kernel fields in scan order.
var entryColumns = []string{
	"id",
	"parent_id",
	"server_parent_id",
	"base_version",
	"server_version",
	"name",
	"server_name",
	"is_dir",
	"server_is_dir",
	"is_del",
	"server_is_del",
	"is_unsynced",
	"is_unapplied_update",
	"unique_client_tag",
	"position",
	"server_position",
	"specifics",
	"server_specifics",
	"ctime",
	"mtime",
}

// entryRepository is the SQL-backed implementation of [BackingStore]. It
// executes all entry-table operations directly against the "entries" table
// using the embedded [*DB] connection. The same code serves both drivers;
// only the placeholder format differs.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs a [BackingStore] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewEntryRepository(db *DB, logger *logger.Logger) BackingStore {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// builder returns a statement builder with the placeholder format matching
// the active driver.
func (r *entryRepository) builder() sq.StatementBuilderType {
	if r.dialect == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Load implements [BackingStore]. It reads the whole entries table; the
// directory holds the full entry graph in memory, so there is no paging.
func (r *entryRepository) Load(ctx context.Context) ([]EntryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Select(entryColumns...).From("entries").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.Load").
			Msg("failed to execute query for loading entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]EntryRecord, 0, 64)

	for rows.Next() {
		var rec EntryRecord
		var specificsBlob, serverSpecsBlob []byte

		scanErr := rows.Scan(
			&rec.ID,
			&rec.ParentID,
			&rec.ServerParentID,
			&rec.BaseVersion,
			&rec.ServerVersion,
			&rec.Name,
			&rec.ServerName,
			&rec.IsDir,
			&rec.ServerIsDir,
			&rec.IsDel,
			&rec.ServerIsDel,
			&rec.IsUnsynced,
			&rec.IsUnappliedUpdate,
			&rec.UniqueClientTag,
			&rec.Position,
			&rec.ServerPosition,
			&specificsBlob,
			&serverSpecsBlob,
			&rec.CTime,
			&rec.MTime,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.Load").
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if rec.Specifics, scanErr = unmarshalSpecifics(specificsBlob); scanErr != nil {
			return nil, scanErr
		}
		if rec.ServerSpecifics, scanErr = unmarshalSpecifics(serverSpecsBlob); scanErr != nil {
			return nil, scanErr
		}

		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.Load").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// SaveEntries implements [BackingStore]. Each record is upserted by ID; the
// ON CONFLICT clause is shared by the sqlite3 and pgx dialects.
func (r *entryRepository) SaveEntries(ctx context.Context, records []EntryRecord) error {
	if len(records) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	insert := r.builder().Insert("entries").Columns(entryColumns...)
	for _, rec := range records {
		specificsBlob, err := marshalSpecifics(rec.Specifics)
		if err != nil {
			return err
		}
		serverSpecsBlob, err := marshalSpecifics(rec.ServerSpecifics)
		if err != nil {
			return err
		}

		insert = insert.Values(
			rec.ID,
			rec.ParentID,
			rec.ServerParentID,
			rec.BaseVersion,
			rec.ServerVersion,
			rec.Name,
			rec.ServerName,
			rec.IsDir,
			rec.ServerIsDir,
			rec.IsDel,
			rec.ServerIsDel,
			rec.IsUnsynced,
			rec.IsUnappliedUpdate,
			rec.UniqueClientTag,
			rec.Position,
			rec.ServerPosition,
			specificsBlob,
			serverSpecsBlob,
			rec.CTime,
			rec.MTime,
		)
	}

	query, args, err := insert.Suffix(upsertEntriesSuffix).ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.SaveEntries").
			Int("records", len(records)).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.SaveEntries").
			Int("records", len(records)).
			Msg("failed to execute upsert for dirty entries")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrEntryNotSaved
	}

	return nil
}

// DeleteEntries implements [BackingStore].
func (r *entryRepository) DeleteEntries(ctx context.Context, ids []models.ID) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Delete("entries").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "entryRepository.DeleteEntries").
			Int("ids", len(ids)).
			Msg("failed to delete entry rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Close implements [BackingStore].
func (r *entryRepository) Close() error {
	return r.DB.Close()
}

func marshalSpecifics(specifics models.EntitySpecifics) ([]byte, error) {
	blob, err := json.Marshal(specifics)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshalSpecifics, err)
	}
	return blob, nil
}

func unmarshalSpecifics(blob []byte) (models.EntitySpecifics, error) {
	var specifics models.EntitySpecifics
	if len(blob) == 0 {
		return specifics, nil
	}
	if err := json.Unmarshal(blob, &specifics); err != nil {
		return models.EntitySpecifics{}, fmt.Errorf("%w: %w", ErrMarshalSpecifics, err)
	}
	return specifics, nil
}
