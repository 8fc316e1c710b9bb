package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{"APP_NAME", "PORT", "STORAGE_DRIVER", "DATABASE_URL", "JWT_SIGNING_KEY",
		"JWT_ISSUER", "CORS_ALLOWED_ORIGINS", "RABBITMQ_ENABLED", "FLUENTBIT_ENABLED", "STDOUT_LOG_LEVEL"} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "househunt-service", cfg.AppName)
	assert.Equal(t, "8085", cfg.Rest.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Rest.CORSAllowedOrigins)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "househunt-auth", cfg.Auth.JWTIssuer)
	assert.Equal(t, "househunt_exchange", cfg.RabbitMQ.Exchange)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)

	assert.Error(t, cfg.Validate(), "signing key and database url are missing")
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"STORAGE_DRIVER=memory\nJWT_SIGNING_KEY=secret\nCORS_ALLOWED_ORIGINS= https://a.example , ,https://b.example\nFLUENTBIT_ENABLED=true\n",
	), 0o600))
	for _, key := range []string{"STORAGE_DRIVER", "JWT_SIGNING_KEY", "CORS_ALLOWED_ORIGINS", "FLUENTBIT_ENABLED", "FLUENTBIT_HOST"} {
		unsetEnv(t, key)
	}
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Rest.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Rest.CORSAllowedOrigins)
	assert.False(t, cfg.FluentBit.Enabled, "fluent is disabled without a host")
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"memory ok", AppConfig{Storage: StorageConfig{Driver: StorageDriverMemory}, Auth: AuthConfig{JWTSigningKey: "k"}}, false},
		{"postgres needs url", AppConfig{Storage: StorageConfig{Driver: StorageDriverPostgres}, Auth: AuthConfig{JWTSigningKey: "k"}}, true},
		{"unknown driver", AppConfig{Storage: StorageConfig{Driver: "mongo"}, Auth: AuthConfig{JWTSigningKey: "k"}}, true},
		{"rabbit needs url", AppConfig{
			Storage:  StorageConfig{Driver: StorageDriverMemory},
			Auth:     AuthConfig{JWTSigningKey: "k"},
			RabbitMQ: RabbitMQConfig{Enabled: true},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("HH_TEST_INT", "abc")
	t.Setenv("HH_TEST_BOOL", "maybe")
	assert.Equal(t, 7, getEnvAsInt("HH_TEST_INT", 7))
	assert.True(t, getEnvAsBool("HH_TEST_BOOL", true))
}

// unsetEnv снимает переменную на время теста и восстанавливает ее после
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
