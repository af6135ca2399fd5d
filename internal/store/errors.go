package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionValueNotFound is returned when no row exists for the
	// requested session key.
	ErrSessionValueNotFound = errors.New("session value not found")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingQuery is returned when the SQL builder rejects a query.
	ErrBuildingQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
