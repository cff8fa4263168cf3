package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setValidEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("JWT_ALGORITHM", "HS256")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "20")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		setValidEnv(t)

		cfg, err := LoadConfig()

		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "supersecret", cfg.JWTSecret)
		assert.Equal(t, "HS256", cfg.JWTAlgorithm)
		assert.Equal(t, 20, cfg.TokenTTLMinutes)
	})

	t.Run("DefaultsAppPort", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("APP_PORT", "")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.AppPort)
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("JWT_SECRET", "")

		cfg, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("MissingAlgorithm", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("JWT_ALGORITHM", "")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_ALGORITHM")
	})

	t.Run("MissingTTL", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ACCESS_TOKEN_EXPIRE_MINUTES")
	})

	t.Run("NonNumericTTL", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("ZeroTTL", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "0")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("MissingDBHost", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("DB_HOST", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
