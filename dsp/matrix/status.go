package matrix

import "errors"

// Status is the outcome of a matrix operation for callers that branch on
// status values instead of errors.
type Status int

const (
	// Success means the operation completed and wrote its output.
	Success Status = iota

	// SizeMismatch means the operand shapes were incompatible and nothing
	// was written.
	SizeMismatch

	// OutOfRange means a buffer did not match its declared shape.
	OutOfRange

	// Failure covers errors that did not originate in this package.
	Failure
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case SizeMismatch:
		return "SizeMismatch"
	case OutOfRange:
		return "OutOfRange"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// StatusOf maps an error to a Status. Errors that wrap neither
// ErrSizeMismatch nor ErrOutOfRange map to Failure.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrSizeMismatch):
		return SizeMismatch
	case errors.Is(err, ErrOutOfRange):
		return OutOfRange
	default:
		return Failure
	}
}
