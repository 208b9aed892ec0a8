package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 24, cfg.TokenTTLHours)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "dist", cfg.StaticDir)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:5173")
}

func TestLoadDevFallbackSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")

	cfg := Load()
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_HOURS", "6")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 6, cfg.TokenTTLHours)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestEnvIntInvalidKeepsDefault(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "soon")
	assert.Equal(t, 24, envInt("TOKEN_TTL_HOURS", 24))
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 60*time.Second, cfg.TTL)
	assert.Equal(t, "studio:cache", cfg.Prefix)
}
