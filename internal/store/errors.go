package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same email already exists. It is mapped
	// from the database's UNIQUE constraint violation, which closes the
	// registration check-then-act race: two concurrent registrations with
	// the same email cannot both succeed.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrNoUserWasFound is returned when a lookup by id or email matches no
	// user record. It is the explicit not-found sentinel: repository callers
	// are expected to branch on it rather than treat it as a fault.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNothingToUpdate is returned when a partial update request carries
	// no fields to apply.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan user rows")
)
