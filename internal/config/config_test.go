package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.yaml")
	envPath := filepath.Join(dir, "app.env")

	if err := os.WriteFile(cfgPath, []byte("env: \"local\"\nhttp_server:\n  host: \"localhost\"\n  port: 8080\n  timeout: 4s\npostgres:\n  host: \"localhost\"\n  port: 5432\n  user: ${POSTGRES_USER}\n  password: ${POSTGRES_PASSWORD}\n  db: ${POSTGRES_DB}\nmembership:\n  default_user_id: 2000\n  assigned_by: \"Admin\"\nvalidation:\n  mode: \"all\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := os.WriteFile(envPath, []byte("POSTGRES_USER=memberships_user\nPOSTGRES_PASSWORD=memberships_password\nPOSTGRES_DB=memberships_db\n"), 0o600); err != nil {
		t.Fatalf("failed to write env: %v", err)
	}

	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("ENV_FILE", envPath)
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("POSTGRES_DB", "")

	cfg := LoadConfig()

	assert.Equal(t, Config{
		Env: "local",
		Server: ServerConfig{
			Host:    "localhost",
			Port:    8080,
			Timeout: 4 * time.Second,
		},
		Pg: PgConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "memberships_user",
			Password: "memberships_password",
			Db:       "memberships_db",
			SSLMode:  "disable",
		},
		Membership: MembershipConfig{
			DefaultUserID: 2000,
			AssignedBy:    "Admin",
		},
		Validation: ValidationConfig{Mode: "all"},
		Tracing:    TracingConfig{ServiceName: "memberships"},
	}, *cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("env: \"prod\"\npostgres:\n  port: 5432\n"), 0o600))

	t.Setenv("MEMBERSHIPS_POSTGRES_PORT", "6543")
	t.Setenv("MEMBERSHIPS_VALIDATION_MODE", "all")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 6543, cfg.Pg.Port)
	assert.Equal(t, "all", cfg.Validation.Mode)
	assert.Equal(t, int64(2000), cfg.Membership.DefaultUserID)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_DefaultEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("http_server:\n  port: 8081\n"), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestPgConfig_URL(t *testing.T) {
	pg := PgConfig{Host: "db", Port: 5432, User: "u", Password: "p", Db: "memberships", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/memberships?sslmode=disable", pg.URL())
}
