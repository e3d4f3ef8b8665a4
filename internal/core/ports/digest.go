package ports

// Defines an interface for computing fixed-size message digests.
type DigestPort interface {
	// Calculates the digest of data in a single pass.
	// The specific hash algorithm used depends on the implementation.
	// Returns the raw digest bytes.
	Sum(data []byte) []byte

	// Returns the digest length in bytes produced by Sum.
	Size() int

	// Returns the canonical algorithm name, e.g. "SHA-256".
	Name() string
}
