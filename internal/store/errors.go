package store

import "errors"

// Sentinel errors of the key-value backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when no value is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidKey is returned when a key cannot be mapped to the backend,
	// for example a file name with path separators.
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrUnknownBackend is returned by [NewKeyValueStorage] for an
	// unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Persistence adapter errors. They never cross the adapter boundary as
// return values; they are logged and passed to the failure observer.
var (
	// ErrParse marks a stored snapshot that is not valid JSON or does not
	// match the snapshot layout.
	ErrParse = errors.New("malformed note snapshot")

	// ErrUnsupportedVersion marks a snapshot written by a newer release.
	// It is always wrapped together with ErrParse.
	ErrUnsupportedVersion = errors.New("unsupported note snapshot version")

	// ErrPersistenceRead marks a backend failure while reading the snapshot.
	ErrPersistenceRead = errors.New("failed to read note snapshot")

	// ErrPersistenceWrite marks a backend failure while writing the snapshot.
	ErrPersistenceWrite = errors.New("failed to write note snapshot")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
