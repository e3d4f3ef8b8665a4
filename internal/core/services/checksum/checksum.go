package checksum

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/iamNilotpal/checksum/internal/adapters/digest"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/pkg/base16"
	"github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/fs"
	"github.com/iamNilotpal/checksum/pkg/logger"
)

// Service computes message digests over whole files and verifies them
// against expected values. It runs a single linear pipeline per call,
// Read -> Digest -> Encode -> Compare, with no retries and no state
// carried between calls.
type Service struct {
	options *domain.ChecksumOptions // Configuration controlling algorithm and output case.
	fs      ports.FileSystemPort    // Handles file system operations.
	log     *zap.SugaredLogger      // Diagnostics, stderr only.
}

func New(opts *domain.ChecksumOptions, fileSystem ports.FileSystemPort, log *zap.SugaredLogger) (*Service, error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	if fileSystem == nil {
		fileSystem = fs.NewLocalFileSystem()
	}
	if log == nil {
		log = logger.New("checksum", false)
	}

	return &Service{options: opts, fs: fileSystem, log: log}, nil
}

// Compute reads the file at input.FilePath, digests its full contents
// with the resolved algorithm, and renders the digest in hexadecimal.
// When input.Expected is non-empty the result also carries the outcome
// of a case-insensitive comparison. All returned errors are
// ChecksumError values categorized for exit-status mapping.
func (s *Service) Compute(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	hasher, err := s.resolve(input.Algorithm)
	if err != nil {
		return nil, errors.NewChecksumError("resolve algorithm", errors.ErrorAlgorithm, err)
	}

	data, err := s.fs.ReadFile(input.FilePath)
	if err != nil {
		return nil, errors.NewChecksumError("read file", errors.ErrorIO, err)
	}
	s.log.Debugw("file read", "path", input.FilePath, "bytes", len(data))

	sum := hasher.Sum(data)
	checksum := s.render(sum)
	s.log.Debugw("digest computed", "algorithm", hasher.Name(), "checksum", checksum)

	result := Result{
		Algorithm: domain.ChecksumAlgorithm(hasher.Name()),
		Checksum:  checksum,
		FileSize:  int64(len(data)),
		FilePath:  input.FilePath,
		Expected:  input.Expected,
	}

	if input.Expected != "" {
		result.Matched = strings.EqualFold(input.Expected, checksum)
		s.log.Debugw("checksum compared", "expected", input.Expected, "matched", result.Matched)
	}

	return &result, nil
}

// resolve picks the digest implementation for this computation. A
// custom port configured on the service wins; otherwise the per-call
// algorithm, falling back to the configured default.
func (s *Service) resolve(algorithm domain.ChecksumAlgorithm) (ports.DigestPort, error) {
	if s.options.Custom != nil {
		return s.options.Custom, nil
	}

	if algorithm == "" {
		algorithm = s.options.Algorithm
	}

	return digest.Resolve(algorithm)
}

// render encodes the digest with the configured alphabet. The uppercase
// path normalizes again after encoding, matching case-insensitive
// comparison expectations even if the alphabet ever changed.
func (s *Service) render(sum []byte) string {
	checksum := base16.EncodeToString(sum, s.options.Lowercase)
	if !s.options.Lowercase {
		checksum = strings.ToUpper(checksum)
	}
	return checksum
}
