package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backends for the collection roster
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Storage  string
	Discord  DiscordConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Rulebook RulebookConfig
	Battle   BattleConfig
}

// DiscordConfig holds the optional battle-log sink
type DiscordConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether battle logs should be posted to Discord
func (d DiscordConfig) Enabled() bool {
	return d.Token != "" && d.ChannelID != ""
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL takes precedence over Addr/Password/DB when set
	URL      string
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string
}

// RulebookConfig points at the species/ability/effect catalog
type RulebookConfig struct {
	// Path is empty for the built-in rulebook
	Path string
}

// BattleConfig holds combat tuning for the simulator
type BattleConfig struct {
	// Seed is 0 for a clock-seeded roller
	Seed        int64
	EnergyRegen int
	MaxRounds   int
	// HitDelay caps each pause between hits during playback; 0 plays headless
	HitDelay time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Storage: getEnvOrDefault("STORAGE", StorageMemory),
		Discord: DiscordConfig{
			Token:     os.Getenv("DISCORD_TOKEN"),
			ChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Rulebook: RulebookConfig{
			Path: os.Getenv("RULEBOOK_PATH"),
		},
		Battle: BattleConfig{
			Seed:        int64(getEnvAsIntOrDefault("BATTLE_SEED", 0)),
			EnergyRegen: getEnvAsIntOrDefault("ENERGY_REGEN", 25),
			MaxRounds:   getEnvAsIntOrDefault("MAX_ROUNDS", 50),
			HitDelay:    getEnvAsDurationOrDefault("HIT_DELAY", 0),
		},
	}

	// Validate
	switch cfg.Storage {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for postgres storage")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}
	if cfg.Discord.ChannelID != "" && cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required when DISCORD_CHANNEL_ID is set")
	}
	if cfg.Battle.EnergyRegen < 0 {
		return nil, fmt.Errorf("ENERGY_REGEN cannot be negative")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
