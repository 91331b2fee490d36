package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Env                string `mapstructure:"ENV"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	DBMaxConns         int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns         int32  `mapstructure:"DB_MIN_CONNS"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	MigrationsDir      string `mapstructure:"MIGRATIONS_DIR"`
	DefaultSlotMinutes int    `mapstructure:"DEFAULT_SLOT_MINUTES"`
	SlotCacheSize      int    `mapstructure:"SLOT_CACHE_SIZE"`
	ExportDir          string `mapstructure:"EXPORT_DIR"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_DIR", "./migrations")
	v.SetDefault("DEFAULT_SLOT_MINUTES", 30)
	v.SetDefault("SLOT_CACHE_SIZE", 512)
	v.SetDefault("EXPORT_DIR", ".")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("MIGRATIONS_DIR")
	v.BindEnv("DEFAULT_SLOT_MINUTES")
	v.BindEnv("SLOT_CACHE_SIZE")
	v.BindEnv("EXPORT_DIR")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks the values that would otherwise fail deep inside the
// scheduling core with a confusing error.
func (c *Config) Validate() error {
	switch c.DefaultSlotMinutes {
	case 15, 20, 30:
	default:
		return fmt.Errorf("DEFAULT_SLOT_MINUTES must be 15, 20 or 30, got %d", c.DefaultSlotMinutes)
	}
	if c.SlotCacheSize <= 0 {
		return fmt.Errorf("SLOT_CACHE_SIZE must be positive, got %d", c.SlotCacheSize)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}
