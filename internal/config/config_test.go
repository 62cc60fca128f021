package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "0.0.0.0"
  port: 8080
firebase:
  project_id: "fairway-test"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, 10, cfg.Workflow.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.PendingRequestDigest)
	assert.Equal(t, "0 30 2 * * *", cfg.Scheduler.ReconcileClubCounters)
}

func TestLoad_RequiresProjectID(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "0.0.0.0"
  port: 8080
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project id")
}

func TestLoad_SendgridRequiresAddresses(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
firebase:
  project_id: "fairway-test"
email:
  sendgrid_api_key: "SG.key"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from address")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
firebase:
  project_id: "fairway-test"
`)

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}
