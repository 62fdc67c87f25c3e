package dataset

import "errors"

// Common errors returned by the dataset package. All are usage errors
// surfaced directly to the caller; none are retried internally.
var (
	// ErrIndexOutOfRange is returned when a record index is out of range.
	ErrIndexOutOfRange = errors.New("record index out of range")

	// ErrNilRecord is returned when a required record argument is nil.
	ErrNilRecord = errors.New("record is nil")

	// ErrInvalidPage is returned when a page number or page size is
	// less than one.
	ErrInvalidPage = errors.New("page number and page size must be positive")
)
