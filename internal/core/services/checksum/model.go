package checksum

import (
	"github.com/iamNilotpal/checksum/internal/core/domain"
)

// Input carries the parameters for a single checksum computation.
type Input struct {
	// FilePath is the file whose checksum to calculate.
	FilePath string

	// Algorithm optionally overrides the service's configured algorithm
	// for this computation. Empty means use the configured default.
	Algorithm domain.ChecksumAlgorithm

	// Expected is the checksum value to compare against, as supplied by
	// the caller. Empty means compute-and-report only. Comparison is
	// case-insensitive.
	Expected string
}

// Result holds the outcome of a checksum computation. A failed
// comparison is reported here, not as an error.
type Result struct {
	// Algorithm that produced the checksum, canonical name.
	Algorithm domain.ChecksumAlgorithm

	// Checksum is the hexadecimal digest of the file contents.
	Checksum string

	// FileSize is the file length in bytes.
	FileSize int64

	// FilePath echoes the input path.
	FilePath string

	// Expected echoes the expected checksum, empty when none was given.
	Expected string

	// Matched reports whether Checksum equals Expected ignoring case.
	// Meaningful only when Expected is non-empty.
	Matched bool
}
