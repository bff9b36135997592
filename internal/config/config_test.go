package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
jwt:
  secret: "0123456789abcdef0123456789abcdef"
admin:
  username: "admin"
  password_hash: "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "data", cfg.LocalStore.DataDir)
	assert.Equal(t, 8*time.Hour, cfg.AccessTokenExpiry())
	assert.Equal(t, "0 0 7 * * *", cfg.Scheduler.AlertDigestCron)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.PaymentReminderCron)
	assert.Equal(t, "0 0 10 * * *", cfg.Scheduler.OverdueReminderCron)
	assert.False(t, cfg.Scheduler.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FIRESTORE_PROJECT_ID", "festaloc-prod")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "festaloc-prod", cfg.Firestore.ProjectID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing jwt secret", `
server:
  port: 8080
admin:
  username: "admin"
  password_hash: "hash"
`},
		{"short jwt secret", `
server:
  port: 8080
jwt:
  secret: "tooshort"
admin:
  username: "admin"
  password_hash: "hash"
`},
		{"missing admin", `
server:
  port: 8080
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`},
		{"bad port", `
server:
  port: 99999
jwt:
  secret: "0123456789abcdef0123456789abcdef"
admin:
  username: "admin"
  password_hash: "hash"
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
