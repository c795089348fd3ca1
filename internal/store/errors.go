package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSettingsNotFound is returned when a user has no saved interview
	// settings record.
	ErrSettingsNotFound = errors.New("interview settings not found")

	// ErrTranscriptNotFound is returned when a transcript lookup (identified by
	// transcript_id and user_id) matches no rows. Transcripts belonging to
	// other users are indistinguishable from missing ones.
	ErrTranscriptNotFound = errors.New("interview transcript not found")

	// ErrTranscriptNotSaved is returned when an INSERT of a transcript
	// completes without error but no row was actually persisted.
	ErrTranscriptNotSaved = errors.New("interview transcript was not saved")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingEntries is returned when serialising transcript entries for
	// storage fails.
	ErrEncodingEntries = errors.New("failed to encode transcript entries")

	// ErrDecodingEntries is returned when deserialising stored transcript
	// entries fails.
	ErrDecodingEntries = errors.New("failed to decode transcript entries")
)
