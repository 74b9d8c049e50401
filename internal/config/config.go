package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
	"github.com/KirkDiggler/lol-cast-engine/internal/input"
)

// Config holds all configuration for the application
type Config struct {
	Champion       string `env:"CHAMPION,required"`
	CastPreference string `env:"CAST_PREFERENCE" envDefault:"normal"`
	// EarlyRelease of zero disables the early cooldown release
	EarlyRelease  time.Duration     `env:"COOLDOWN_EARLY_RELEASE" envDefault:"350ms"`
	InputBuffer   int               `env:"INPUT_BUFFER" envDefault:"64"`
	KeyBindings   map[string]string `env:"KEY_BINDINGS" envKeyValSeparator:"="`
	CastModesFile string            `env:"CAST_MODES_FILE"`

	Log        LogConfig
	Redis      RedisConfig
	DDragon    DDragonConfig
	LiveClient LiveClientConfig
	Display    DisplayConfig
	Discord    DiscordConfig

	preference champion.CastPreference
	keyMap     input.KeyMap
}

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT"`
}

// RedisConfig holds the cache connection; an empty URL keeps the cache in memory
type RedisConfig struct {
	URL      string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// DDragonConfig holds Data Dragon configuration
type DDragonConfig struct {
	BaseURL string        `env:"DDRAGON_BASE_URL" envDefault:"https://ddragon.leagueoflegends.com"`
	Timeout time.Duration `env:"DDRAGON_TIMEOUT" envDefault:"10s"`
}

type LiveClientConfig struct {
	URL          string        `env:"LIVE_CLIENT_URL" envDefault:"https://127.0.0.1:2999"`
	PollInterval time.Duration `env:"LIVE_CLIENT_POLL_INTERVAL" envDefault:"250ms"`
	InsecureTLS  bool          `env:"LIVE_CLIENT_INSECURE_TLS" envDefault:"true"`
}

// DisplayConfig holds the websocket display listener; empty disables it
type DisplayConfig struct {
	Addr string `env:"DISPLAY_ADDR" envDefault:"127.0.0.1:8089"`
}

// DiscordConfig holds Discord notifications; both fields are needed to enable them
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Enabled reports whether notifications should be posted
func (d DiscordConfig) Enabled() bool {
	return d.Token != "" && d.ChannelID != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, casterr.WrapWithCode(err, casterr.CodeValidation, "failed to parse environment")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Preference is the parsed CAST_PREFERENCE
func (c *Config) Preference() champion.CastPreference {
	return c.preference
}

// KeyMap is the parsed KEY_BINDINGS, or the default layout when unset
func (c *Config) KeyMap() input.KeyMap {
	if c.keyMap == nil {
		return input.DefaultKeyMap()
	}
	return c.keyMap
}

func (c *Config) validate() error {
	pref, err := champion.ParseCastPreference(c.CastPreference)
	if err != nil {
		return casterr.WrapWithCode(err, casterr.CodeValidation, "invalid CAST_PREFERENCE")
	}
	c.preference = pref

	if len(c.KeyBindings) > 0 {
		km, err := input.ParseKeyMap(c.KeyBindings)
		if err != nil {
			return casterr.WrapWithCode(err, casterr.CodeValidation, "invalid KEY_BINDINGS")
		}
		c.keyMap = km
	}

	if c.EarlyRelease < 0 {
		return casterr.Validationf("COOLDOWN_EARLY_RELEASE must not be negative, got %s", c.EarlyRelease)
	}
	if c.InputBuffer <= 0 {
		return casterr.Validationf("INPUT_BUFFER must be positive, got %d", c.InputBuffer)
	}
	if c.LiveClient.PollInterval <= 0 {
		return casterr.Validationf("LIVE_CLIENT_POLL_INTERVAL must be positive, got %s", c.LiveClient.PollInterval)
	}
	if c.Redis.CacheTTL <= 0 {
		return casterr.Validationf("CACHE_TTL must be positive, got %s", c.Redis.CacheTTL)
	}
	if (c.Discord.Token == "") != (c.Discord.ChannelID == "") {
		return casterr.Validation("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	return nil
}
