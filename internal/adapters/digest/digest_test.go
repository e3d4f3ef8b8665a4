package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/checksum/internal/adapters/digest"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/pkg/errors"
)

func TestResolve_canonical_names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name domain.ChecksumAlgorithm
		size int
	}{
		{digest.MD5, 16},
		{digest.SHA1, 20},
		{digest.SHA256, 32},
		{digest.SHA512, 64},
	}

	for _, tc := range tests {
		hasher, err := digest.Resolve(tc.name)

		require.NoError(t, err)
		assert.Equal(t, string(tc.name), hasher.Name())
		assert.Equal(t, tc.size, hasher.Size())
		assert.Len(t, hasher.Sum([]byte("abc")), tc.size)
	}
}

func TestResolve_is_case_insensitive(t *testing.T) {
	t.Parallel()

	for _, name := range []domain.ChecksumAlgorithm{"md5", "Md5", "sha-1", "sha1", "SHA256", "sha-256", "sha512"} {
		hasher, err := digest.Resolve(name)

		require.NoError(t, err, "resolving %q", name)
		assert.NotNil(t, hasher)
	}
}

func TestResolve_unknown_algorithm(t *testing.T) {
	t.Parallel()

	_, err := digest.Resolve("WHIRLPOOL")

	require.Error(t, err)
	require.True(t, errors.IsUnsupportedAlgorithmError(err))
	assert.Equal(t, "WHIRLPOOL", errors.AsUnsupportedAlgorithmError(err).Algorithm)
}

func TestSum_known_vectors(t *testing.T) {
	t.Parallel()

	// RFC 1321 / FIPS 180 test vectors for "abc".
	tests := []struct {
		algorithm domain.ChecksumAlgorithm
		first     []byte
	}{
		{digest.MD5, []byte{0x90, 0x01, 0x50, 0x98}},
		{digest.SHA1, []byte{0xA9, 0x99, 0x3E, 0x36}},
		{digest.SHA256, []byte{0xBA, 0x78, 0x16, 0xBF}},
		{digest.SHA512, []byte{0xDD, 0xAF, 0x35, 0xA1}},
	}

	for _, tc := range tests {
		hasher, err := digest.Resolve(tc.algorithm)
		require.NoError(t, err)

		sum := hasher.Sum([]byte("abc"))

		assert.Equal(t, tc.first, sum[:4], "algorithm %s", tc.algorithm)
	}
}

func TestValidate_accepts_defaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, digest.Validate(digest.DefaultOptions()))
}

func TestValidate_rejects_unknown_algorithm(t *testing.T) {
	t.Parallel()

	err := digest.Validate(&domain.ChecksumOptions{Algorithm: "BLAKE3"})

	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedAlgorithmError(err))
}

func TestDefaultOptions_uses_sha1_uppercase(t *testing.T) {
	t.Parallel()

	opts := digest.DefaultOptions()

	assert.Equal(t, digest.SHA1, opts.Algorithm)
	assert.False(t, opts.Lowercase)
}
