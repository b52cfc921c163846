package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a user
	// fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because the email is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a user lookup produces an empty
	// result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotFound is returned when a queried record (company, warehouse,
	// product, order, transaction) does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrSKUAlreadyExists is returned when a product insert or update
	// violates the per-warehouse SKU uniqueness constraint.
	ErrSKUAlreadyExists = errors.New("sku already exists in warehouse")

	// ErrInsufficientStock is returned when an outbound inventory
	// transaction would drive the product quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrForeignKeyViolation is returned when an insert references a
	// missing parent row (e.g. a product for an unknown warehouse).
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
