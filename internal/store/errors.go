package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMessageNotFound is returned when a lookup or a mutation targets a
	// message id that does not exist (or, for active-scoped operations, that
	// was soft-deleted).
	ErrMessageNotFound = errors.New("message not found")

	// ErrMessageNotSaved is returned when an INSERT completes without error
	// but yields no row.
	ErrMessageNotSaved = errors.New("message was not saved")

	// ErrDatabaseUnavailable is returned by every repository method while the
	// server runs without a database connection.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan message row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan message rows")
)
