package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMessageNotFound is returned when a query targets a message row
	// that does not exist or has been soft-deleted.
	ErrMessageNotFound = errors.New("message was not found")

	// ErrPostShareNotFound is returned when a query targets a shared-post
	// row that does not exist.
	ErrPostShareNotFound = errors.New("post share was not found")

	// ErrTransactionNotFound is returned when a query targets a transaction
	// row that does not exist for the given order and user pair.
	ErrTransactionNotFound = errors.New("transaction was not found")

	// ErrMediaNotFound is returned when a media metadata row or its
	// encrypted blob cannot be located.
	ErrMediaNotFound = errors.New("media object was not found")

	// ErrDuplicateRecord is returned when an INSERT violates a unique
	// constraint, for example recording the same order twice for one user.
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrMissingParent is returned when an INSERT or UPDATE references a
	// parent row that does not exist, for example attaching a message to a
	// media object that was never uploaded.
	ErrMissingParent = errors.New("referenced record does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
