package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/checksum/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	pa := filepath.Join(t.TempDir(), "checksum.yaml")
	require.NoError(t, os.WriteFile(pa, []byte(contents), 0o600))
	return pa
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	assert.Equal(t, "SHA-1", cfg.Checksum.DefaultAlgorithm)
	assert.False(t, cfg.Checksum.Lowercase)
}

func TestLoadConfig_valid(t *testing.T) {
	t.Parallel()

	pa := writeConfig(t, "checksum:\n  default_algorithm: SHA-256\n  lowercase: true\n")

	cfg, err := config.LoadConfig(pa)

	require.NoError(t, err)
	assert.Equal(t, "SHA-256", cfg.Checksum.DefaultAlgorithm)
	assert.True(t, cfg.Checksum.Lowercase)
}

func TestLoadConfig_empty_algorithm_falls_back(t *testing.T) {
	t.Parallel()

	pa := writeConfig(t, "checksum:\n  lowercase: true\n")

	cfg, err := config.LoadConfig(pa)

	require.NoError(t, err)
	assert.Equal(t, "SHA-1", cfg.Checksum.DefaultAlgorithm)
}

func TestLoadConfig_unknown_algorithm(t *testing.T) {
	t.Parallel()

	pa := writeConfig(t, "checksum:\n  default_algorithm: CRC999\n")

	_, err := config.LoadConfig(pa)

	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported hash algorithm")
}

func TestLoadConfig_missing_file(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoadConfig_malformed_yaml(t *testing.T) {
	t.Parallel()

	pa := writeConfig(t, "checksum: [not a mapping")

	_, err := config.LoadConfig(pa)

	require.Error(t, err)
	assert.ErrorContains(t, err, "error parsing config file")
}
