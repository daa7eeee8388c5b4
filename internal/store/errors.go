package store

import "errors"

// Sentinel errors returned by backing store methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrEntryNotSaved is returned when an upsert of one or more entry
	// records completes without error but the number of affected rows is
	// zero, indicating that no data was actually persisted.
	ErrEntryNotSaved = errors.New("entry record was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails to
	// execute a query.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// an [EntryRecord].
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iteration over a result set reports
	// an error after the rows are exhausted.
	ErrScanningRows = errors.New("error iterating rows")

	// ErrMarshalSpecifics is returned when an entity specifics payload
	// cannot be serialized for storage or deserialized on load.
	ErrMarshalSpecifics = errors.New("error marshaling specifics")
)
