package digest

import (
	"strings"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/pkg/errors"
)

const (
	// MD5 provides MD5 digests (128-bit). Kept for interoperability
	// with existing published checksums, not for integrity guarantees.
	MD5 domain.ChecksumAlgorithm = "MD5"

	// SHA1 provides SHA-1 digests (160-bit).
	SHA1 domain.ChecksumAlgorithm = "SHA-1"

	// SHA256 provides SHA-256 digests (256-bit).
	SHA256 domain.ChecksumAlgorithm = "SHA-256"

	// SHA512 provides SHA-512 digests (512-bit).
	SHA512 domain.ChecksumAlgorithm = "SHA-512"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm: SHA1,
		Lowercase: false,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		if _, err := Resolve(input.Algorithm); err != nil {
			return err
		}
	}
	return nil
}

// Resolve looks up the digest implementation registered for name.
// Lookup is case-insensitive and tolerates a missing dash, so "sha256"
// resolves to SHA-256. Returns an UnsupportedAlgorithmError for names
// with no registered implementation.
func Resolve(name domain.ChecksumAlgorithm) (ports.DigestPort, error) {
	switch normalize(name) {
	case MD5:
		return NewMD5(), nil
	case SHA1:
		return NewSHA1(), nil
	case SHA256:
		return NewSHA256(), nil
	case SHA512:
		return NewSHA512(), nil
	default:
		return nil, errors.NewUnsupportedAlgorithmError(string(name))
	}
}

func normalize(name domain.ChecksumAlgorithm) domain.ChecksumAlgorithm {
	n := strings.ToUpper(strings.TrimSpace(string(name)))
	switch n {
	case "SHA1":
		return SHA1
	case "SHA256":
		return SHA256
	case "SHA512":
		return SHA512
	}
	return domain.ChecksumAlgorithm(n)
}
