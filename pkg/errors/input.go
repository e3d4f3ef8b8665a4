package errors

import (
	"errors"
	"fmt"
)

// InvalidInputError represents malformed hexadecimal input: an odd number
// of characters, or a character outside 0-9a-fA-F. For the character case
// it records the offending character and its index so callers can report
// exactly where the input went wrong.
type InvalidInputError struct {
	Char     byte  // The offending character; zero when the input length is at fault.
	Position int   // Index of the offending character; -1 when the input length is at fault.
	Err      error // The underlying error describing the problem.
}

// NewOddLengthError creates an InvalidInputError for input whose length
// is not a multiple of two.
func NewOddLengthError() *InvalidInputError {
	return &InvalidInputError{
		Position: -1,
		Err:      errors.New("odd number of characters"),
	}
}

// NewInvalidCharacterError creates an InvalidInputError for a non-hex
// character at the given position.
func NewInvalidCharacterError(char byte, position int) *InvalidInputError {
	return &InvalidInputError{
		Char:     char,
		Position: position,
		Err:      fmt.Errorf("invalid hexadecimal character %q at position %d", char, position),
	}
}

// Error implements the error interface for InvalidInputError.
func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "invalid input"
}

// IsInvalidInputError checks if a given error is of type InvalidInputError.
func IsInvalidInputError(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// AsInvalidInputError attempts to extract an InvalidInputError from a given error.
func AsInvalidInputError(err error) *InvalidInputError {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie
	}
	return nil
}

// UnsupportedAlgorithmError represents a request for a hash algorithm
// that has no implementation registered on this build.
type UnsupportedAlgorithmError struct {
	Algorithm string // The algorithm name as requested by the caller.
}

// NewUnsupportedAlgorithmError creates a new UnsupportedAlgorithmError instance.
func NewUnsupportedAlgorithmError(algorithm string) *UnsupportedAlgorithmError {
	return &UnsupportedAlgorithmError{Algorithm: algorithm}
}

// Error implements the error interface for UnsupportedAlgorithmError.
func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm: %s", e.Algorithm)
}

// IsUnsupportedAlgorithmError checks if a given error is of type UnsupportedAlgorithmError.
func IsUnsupportedAlgorithmError(err error) bool {
	var ue *UnsupportedAlgorithmError
	return errors.As(err, &ue)
}

// AsUnsupportedAlgorithmError attempts to extract an UnsupportedAlgorithmError
// from a given error.
func AsUnsupportedAlgorithmError(err error) *UnsupportedAlgorithmError {
	var ue *UnsupportedAlgorithmError
	if errors.As(err, &ue) {
		return ue
	}
	return nil
}
