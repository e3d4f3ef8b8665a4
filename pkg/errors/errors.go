package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures that can occur while computing
// or verifying a file checksum. The category drives how callers report
// the failure and which process exit status they map it to.
type ErrorCategory int

const (
	// ErrorIO indicates errors while reading the target file, such as a
	// missing file, a directory in place of a file, or denied permissions.
	ErrorIO ErrorCategory = iota + 1

	// ErrorAlgorithm indicates that the requested hash algorithm has no
	// implementation registered on this build.
	ErrorAlgorithm

	// ErrorEncoding indicates errors while converting between raw digest
	// bytes and their hexadecimal representation.
	ErrorEncoding

	// ErrorVerification indicates errors during checksum comparison.
	// A plain mismatch is a business outcome, not an error; this category
	// exists for malformed expected values and similar input problems.
	ErrorVerification
)

// String returns the string representation of the error category.
// This is useful for logging and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorIO:
		return "io"
	case ErrorAlgorithm:
		return "algorithm"
	case ErrorEncoding:
		return "encoding"
	case ErrorVerification:
		return "verification"
	default:
		return "unknown"
	}
}

// ChecksumError wraps a failure at the workflow boundary with the
// operation that failed and its category. All errors leaving the
// checksum service are of this type.
type ChecksumError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewChecksumError creates a ChecksumError for the given operation.
func NewChecksumError(operation string, category ErrorCategory, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsChecksumError checks if a given error is of type ChecksumError.
func IsChecksumError(err error) bool {
	var ce *ChecksumError
	return errors.As(err, &ce)
}

// AsChecksumError attempts to extract a ChecksumError from a given error.
func AsChecksumError(err error) *ChecksumError {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
