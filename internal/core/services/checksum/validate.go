package checksum

import (
	goerrors "errors"
	"strings"

	"github.com/iamNilotpal/checksum/internal/adapters/digest"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/pkg/errors"
)

func Validate(opts *domain.ChecksumOptions) error {
	return digest.Validate(opts)
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.FilePath) == "" {
		return errors.NewChecksumError(
			"validate input", errors.ErrorIO, goerrors.New("file path is required"),
		)
	}
	return nil
}
