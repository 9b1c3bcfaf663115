package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two accounts the same email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when no account matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrRecordNotFound is returned when no climate record has the given id.
	ErrRecordNotFound = errors.New("climate record not found")

	// ErrDatabaseUnavailable is returned when the driver reports that the
	// server could not be reached.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrUnsupportedDriver is returned for a driver name other than
	// "postgres" or "sqlite".
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrAcquiringConnection is returned when the pool cannot hand out a
	// connection.
	ErrAcquiringConnection = errors.New("error acquiring db connection")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
