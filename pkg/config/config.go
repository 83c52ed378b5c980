package config

import (
	"github.com/spf13/viper"

	"github.com/around-labs/around/core"
)

// Config is everything the server binary needs. DATABASE_URL is the only
// externally required variable; the rest have defaults.
type Config struct {
	DatabaseURL string
	Addr        string
	LogLevel    string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("addr", "ADDR")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	cfg := &Config{
		DatabaseURL: v.GetString("database_url"),
		Addr:        v.GetString("addr"),
		LogLevel:    v.GetString("log_level"),
	}
	if cfg.DatabaseURL == "" {
		return nil, core.ErrDatabaseURLRequired
	}
	return cfg, nil
}
