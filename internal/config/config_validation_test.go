package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionLifetime: 720 * time.Hour,
			RateLimit:       1,
			RateWindow:      time.Second,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/gentrack"}},
		Workers: Workers{
			SessionSweepInterval: time.Hour,
			ReminderInterval:     24 * time.Hour,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_ZeroSessionLifetime(t *testing.T) {
	cfg := validConfig()
	cfg.App.SessionLifetime = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_BadRateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.App.RateLimit = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidRateLimitConfigs)

	cfg = validConfig()
	cfg.App.RateWindow = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidRateLimitConfigs)
}

func TestValidate_BadWorkerIntervals(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.ReminderInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:9090"))
	assert.Equal(t, "localhost:9090", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:0"))
	require.Error(t, a.Set("not-an-ip:8080"))
}
