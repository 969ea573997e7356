package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T) *Config {
	t.Helper()
	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))
	return &cfg
}

func TestDefaults(t *testing.T) {
	cfg := process(t)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, AIProviderGemini, cfg.AI.Provider)
	assert.Equal(t, 10*time.Minute, cfg.Redis.ReportTTL)
	assert.Equal(t, "0.0.0.0:4000", cfg.GetServerAddr())
	assert.NoError(t, cfg.Validate())
}

func TestPortAlias(t *testing.T) {
	t.Setenv("PORT", "8080")
	cfg := process(t)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "6379", cfg.Redis.Port)
}

func TestPrefixedWins(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "6543")
	cfg := process(t)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "6543", cfg.Database.Port)
}

func TestAPIKeyAlias(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg := process(t)

	assert.Equal(t, "g-key", cfg.AI.SummarizerAPIKey())

	cfg.AI.Provider = AIProviderGroq
	assert.Empty(t, cfg.AI.SummarizerAPIKey())
}

func TestValidate(t *testing.T) {
	cfg := process(t)
	cfg.Store.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = process(t)
	cfg.AI.Provider = "openai"
	assert.Error(t, cfg.Validate())

	cfg = process(t)
	cfg.Server.Environment = "production"
	cfg.Database.AutoMigrate = true
	assert.Error(t, cfg.Validate())

	cfg = process(t)
	cfg.Redis.ReportTTL = 0
	assert.Error(t, cfg.Validate())

	cfg = process(t)
	assert.NoError(t, cfg.Validate())
}

func TestGetDatabaseDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "feedback")
	cfg := process(t)

	assert.Equal(t, "host=db port=5432 user=postgres password=postgres dbname=feedback sslmode=disable", cfg.GetDatabaseDSN())
}
