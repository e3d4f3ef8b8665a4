package checksum

import (
	"github.com/iamNilotpal/checksum/internal/adapters/digest"
	"github.com/iamNilotpal/checksum/internal/core/domain"
)

func prepareDefaults(opts *domain.ChecksumOptions) *domain.ChecksumOptions {
	if opts == nil {
		return digest.DefaultOptions()
	}

	if opts.Algorithm == "" {
		opts.Algorithm = digest.SHA1
	}

	return opts
}
