package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `{"port": 8080, "users_path": "users.json", "session_secret": "s3cret"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 72, cfg.SessionTTLHours)
	require.Equal(t, "web/templates/*.html", cfg.TemplatesGlob)
	require.Equal(t, "web/static", cfg.StaticDir)
	require.Equal(t, "info", cfg.LogConfig.Level)
}

func TestLoadRequiresSecret(t *testing.T) {
	path := writeConfig(t, `{"port": 8080, "users_path": "users.json"}`)

	_, err := Load(path)
	require.ErrorContains(t, err, "session secret is required")
}

func TestLoadSecretFromEnv(t *testing.T) {
	t.Setenv("WEBGATE_SESSION_SECRET", "env-secret")
	path := writeConfig(t, `{"port": 8080, "users_path": "users.json", "session_secret": "file-secret"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.SessionSecret)
}

func TestLoadRequiredFields(t *testing.T) {
	_, err := Load(writeConfig(t, `{"users_path": "users.json", "session_secret": "s"}`))
	require.ErrorContains(t, err, "port is required")

	_, err = Load(writeConfig(t, `{"port": 8080, "session_secret": "s"}`))
	require.ErrorContains(t, err, "users_path is required")
}
