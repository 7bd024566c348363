package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "northpole", cfg.DBName)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 1, cfg.HeartbeatMinutes)
	assert.Equal(t, 120, cfg.ActorTimeoutSecs)
	assert.True(t, cfg.KickstartOnBoot)
	assert.False(t, cfg.SchedulerDisabled)
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := &Config{HeartbeatMinutes: 1}
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresPositiveHeartbeat(t *testing.T) {
	cfg := &Config{Port: "3000", HeartbeatMinutes: 0}
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRequiresGeminiKey(t *testing.T) {
	cfg := &Config{
		Port:             "3000",
		HeartbeatMinutes: 1,
		Env:              "production",
		DBPassword:       "s3cret-enough",
	}
	assert.Error(t, cfg.Validate())

	cfg.GeminiAPIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestValidateProductionRejectsDefaultPassword(t *testing.T) {
	cfg := &Config{
		Port:             "3000",
		HeartbeatMinutes: 1,
		Env:              "production",
		GeminiAPIKey:     "key",
		DBPassword:       "password",
	}
	assert.Error(t, cfg.Validate())
}
