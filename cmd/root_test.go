package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig_FlagDefaultsAreValid(t *testing.T) {
	// Flag registration in init() seeds the package vars with defaults; the
	// resulting config must construct a model without errors.
	configPath = ""
	cfg, err := buildConfig()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "exponential", cfg.ArrivalDistribution)
	assert.Equal(t, 10, cfg.NumServers)
	assert.Equal(t, 1.0, cfg.ServerProcessingTime)
}

func TestBuildConfig_ConfigFileWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	body := `
num_servers: 3
server_processing_time: 0.7
request_rate: 2.0
failure_rate: 0.1
recovery_rate: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	cfg, err := buildConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.NumServers)
	assert.Equal(t, 0.7, cfg.ServerProcessingTime)
}
