package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_PREFIX", "DB_DRIVER", "DB_NAME", "DB_DSN", "DB_MAX_OPEN_CONNS", "LOG_MODE", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "kisan.db", cfg.DBName)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_PREFIX", "v1/")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_NAME", "farmers")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/v1", cfg.APIPrefix)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "farmers", cfg.DBName)
	assert.Equal(t, 10, cfg.DBMaxOpenConns, "invalid ints fall back to the default")
	assert.Equal(t, 2, cfg.DBMaxIdleConns)
}

func TestNormalizePrefix(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"/":     "",
		"api":   "/api",
		"/api/": "/api",
		" /v2 ": "/v2",
		"a/b/":  "/a/b",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizePrefix(in), "prefix %q", in)
	}
}
