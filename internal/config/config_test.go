package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/lol-cast-engine/internal/config"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
	"github.com/KirkDiggler/lol-cast-engine/internal/input"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHAMPION", "Ahri")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Ahri", cfg.Champion)
	assert.Equal(t, champion.PreferenceNormal, cfg.Preference())
	assert.Equal(t, 350*time.Millisecond, cfg.EarlyRelease)
	assert.Equal(t, 64, cfg.InputBuffer)
	assert.Equal(t, input.DefaultKeyMap(), cfg.KeyMap())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 24*time.Hour, cfg.Redis.CacheTTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "https://ddragon.leagueoflegends.com", cfg.DDragon.BaseURL)
	assert.Equal(t, "https://127.0.0.1:2999", cfg.LiveClient.URL)
	assert.Equal(t, 250*time.Millisecond, cfg.LiveClient.PollInterval)
	assert.True(t, cfg.LiveClient.InsecureTLS)
	assert.False(t, cfg.Discord.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHAMPION", "Xerath")
	t.Setenv("CAST_PREFERENCE", "quick_with_indicator")
	t.Setenv("COOLDOWN_EARLY_RELEASE", "0s")
	t.Setenv("KEY_BINDINGS", "a=Q,s=W,d=E,f=R")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("LIVE_CLIENT_INSECURE_TLS", "false")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "123")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, champion.PreferenceQuickWithIndicator, cfg.Preference())
	assert.Zero(t, cfg.EarlyRelease)
	assert.Equal(t, input.KeyMap{'a': champion.Q, 's': champion.W, 'd': champion.E, 'f': champion.R}, cfg.KeyMap())
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.False(t, cfg.LiveClient.InsecureTLS)
	assert.True(t, cfg.Discord.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing champion", env: map[string]string{}},
		{name: "unknown preference", env: map[string]string{"CAST_PREFERENCE": "smart"}},
		{name: "bad binding", env: map[string]string{"KEY_BINDINGS": "qq=Q"}},
		{name: "negative early release", env: map[string]string{"COOLDOWN_EARLY_RELEASE": "-1s"}},
		{name: "zero input buffer", env: map[string]string{"INPUT_BUFFER": "0"}},
		{name: "zero poll interval", env: map[string]string{"LIVE_CLIENT_POLL_INTERVAL": "0s"}},
		{name: "discord token without channel", env: map[string]string{"DISCORD_TOKEN": "token"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.name != "missing champion" {
				t.Setenv("CHAMPION", "Ahri")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, casterr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}
