package domain

import (
	"github.com/iamNilotpal/checksum/internal/core/ports"
)

// ChecksumAlgorithm represents supported hash algorithms.
type ChecksumAlgorithm string

// ChecksumOptions defines configuration for checksum computation.
type ChecksumOptions struct {
	// Algorithm specifies which hash algorithm to use.
	// Defaults to SHA-1 if not specified.
	Algorithm ChecksumAlgorithm

	// Lowercase renders digests with the lowercase hexadecimal alphabet.
	// The default is uppercase. Comparison against an expected checksum
	// is case-insensitive either way.
	Lowercase bool

	// Custom allows using a custom DigestPort implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.DigestPort
}
