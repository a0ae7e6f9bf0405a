package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the bot needs at startup. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	// DiscordToken authenticates the bot; required
	DiscordToken string `mapstructure:"discord_token"`

	// ApplicationID is the Discord application; falls back to the bot user
	ApplicationID string `mapstructure:"application_id"`

	// GuildID scopes slash commands to one guild during development
	GuildID string `mapstructure:"guild_id"`

	// RedisAddr is the host:port of the Redis instance
	RedisAddr string `mapstructure:"redis_addr"`

	// RedisPassword is empty for an unauthenticated instance
	RedisPassword string `mapstructure:"redis_password"`

	// RedisDB selects the Redis logical database
	RedisDB int `mapstructure:"redis_db"`

	// LogLevel is a zerolog level name
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("log_level", "info")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through Unmarshal
	for _, key := range []string{
		"discord_token", "application_id", "guild_id",
		"redis_addr", "redis_password", "redis_db", "log_level",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN is required")
	}

	return &cfg, nil
}
