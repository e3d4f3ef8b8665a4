package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/iamNilotpal/checksum/config"
	"github.com/iamNilotpal/checksum/internal/adapters/digest"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/internal/core/services/checksum"
	"github.com/iamNilotpal/checksum/pkg/logger"
)

// Process exit statuses. Mismatch is distinguished from real errors so
// scripts can tell a bad checksum from an unreadable file.
const (
	exitOK       = 0
	exitError    = 1
	exitMismatch = 3
)

type CLI struct {
	Filename string `arg:"" help:"The file whose checksum to calculate"`
	Checksum string `arg:"" optional:"" help:"The expected checksum value"`

	Algorithm string `name:"algorithm" short:"a" placeholder:"NAME" help:"The hash algorithm to use (default: SHA-1)"`
	MD5       bool   `name:"md5" short:"m" help:"Use MD5 algorithm"`
	SHA256    bool   `name:"sha256" short:"s" help:"Use SHA-256 algorithm"`
	Config    string `name:"config" short:"c" placeholder:"FILE" type:"path" help:"YAML file with default settings"`
	Verbose   bool   `name:"verbose" short:"v" help:"Enable debug logging"`
}

type kongExitCode int

type commandDeps struct {
	fs     ports.FileSystemPort
	out    io.Writer
	errOut io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], commandDeps{}))
}

func run(args []string, deps commandDeps) (exitCode int) {
	out := deps.out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.errOut
	if errOut == nil {
		errOut = os.Stderr
	}

	cli := CLI{}
	parser, err := kong.New(
		&cli,
		kong.Name("checksum"),
		kong.Description("Compute the message digest of a file and optionally verify it against an expected value."),
		kong.Writers(out, errOut),
		kong.Exit(func(code int) {
			panic(kongExitCode(code))
		}),
	)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: initialize command parser: %v\n", err)
		return exitError
	}

	// kong exits through its Exit hook after printing help; capture that
	// so --help returns 0 without running the workflow.
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		code, ok := recovered.(kongExitCode)
		if !ok {
			panic(recovered)
		}
		exitCode = int(code)
	}()

	if _, err := parser.Parse(args); err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitError
	}

	log := logger.New("checksum", cli.Verbose)
	defer func() { _ = log.Sync() }()

	cfg := config.DefaultConfig()
	if cli.Config != "" {
		cfg, err = config.LoadConfig(cli.Config)
		if err != nil {
			_, _ = fmt.Fprintln(errOut, err)
			return exitError
		}
	}

	// Shorthand flags win over an explicit --algorithm, which wins over
	// the configured default.
	algorithm := domain.ChecksumAlgorithm(cfg.Checksum.DefaultAlgorithm)
	if cli.Algorithm != "" {
		algorithm = domain.ChecksumAlgorithm(cli.Algorithm)
	}
	if cli.MD5 {
		algorithm = digest.MD5
	}
	if cli.SHA256 {
		algorithm = digest.SHA256
	}

	service, err := checksum.New(&domain.ChecksumOptions{
		Algorithm: algorithm,
		Lowercase: cfg.Checksum.Lowercase,
	}, deps.fs, log)
	if err != nil {
		_, _ = fmt.Fprintln(errOut, err)
		return exitError
	}

	result, err := service.Compute(context.Background(), checksum.Input{
		FilePath: cli.Filename,
		Expected: cli.Checksum,
	})
	if err != nil {
		_, _ = fmt.Fprintln(errOut, err)
		return exitError
	}

	switch {
	case result.Expected == "":
		_, _ = fmt.Fprintf(out, "%s %d %s\n", result.Checksum, result.FileSize, result.FilePath)
		return exitOK
	case result.Matched:
		_, _ = fmt.Fprintln(out, "Checksum values match.")
		return exitOK
	default:
		_, _ = fmt.Fprintf(errOut, "%s does not match %s\n", result.Checksum, result.Expected)
		return exitMismatch
	}
}
