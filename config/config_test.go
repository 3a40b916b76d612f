package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "testsecret")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://plantnet.example, https://admin.plantnet.example")
	t.Setenv("APP_ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "plantnet", cfg.DBName)
	assert.Equal(t, []string{"https://plantnet.example", "https://admin.plantnet.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "testsecret")
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("APP_ENV", "")

	cfg := LoadConfig()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "plantnet", cfg.DBName)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:5174"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}
