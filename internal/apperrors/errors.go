package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMalformed indicates that persisted data failed to deserialize into the
// expected shape. Callers generally treat this as "no data" rather than a
// hard failure.
var ErrMalformed = errors.New("malformed stored data")

// ErrStorage indicates that a read or write against the local store failed.
// In-memory state remains the source of truth until the next successful write.
var ErrStorage = errors.New("storage error")

// ErrFetch indicates that the external rate source was unreachable or
// returned a malformed response.
var ErrFetch = errors.New("rate fetch error")
