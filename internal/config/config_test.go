package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, 4, cfg.StationCount)
	assert.Equal(t, 8*time.Second, cfg.SettlementPromptTimeout())
	assert.Equal(t, "lots", cfg.LotsTable)
	assert.Equal(t, "paint_stations", cfg.StationsTable)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", " DynamoDB ")
	t.Setenv("STATION_COUNT", "0")
	t.Setenv("SETTLEMENT_PROMPT_SECONDS", "3")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "dynamodb", cfg.StorageDriver)
	assert.Equal(t, 1, cfg.StationCount)
	assert.Equal(t, 3*time.Second, cfg.SettlementPromptTimeout())
	assert.True(t, cfg.PaymentGatewayMock)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}
