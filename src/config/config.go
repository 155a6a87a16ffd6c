// Package config loads service settings from the environment.
//
// Variables use the BUDGET_ prefix and the first underscore after it picks
// the section, so BUDGET_DATABASE_HOST becomes database.host and
// BUDGET_SERVER_CORS_ALLOWED_ORIGINS becomes server.cors_allowed_origins.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BUDGET_"

type Config struct {
	App      AppConfig      `koanf:"app" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Cache    CacheConfig    `koanf:"cache"`
	AMQP     AMQPConfig     `koanf:"amqp"`
}

type AppConfig struct {
	Env      string `koanf:"env" validate:"required"`
	LogLevel string `koanf:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	// ReadOnly rejects every request that could write.
	ReadOnly bool `koanf:"read_only"`
}

func (a AppConfig) IsLocal() bool {
	return a.Env == "local"
}

type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required,gt=0,lte=65535"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns int32  `koanf:"max_conns" validate:"gt=0"`
}

type CacheConfig struct {
	// TTL of a cached spending summary. Zero disables caching.
	TTL time.Duration `koanf:"ttl" validate:"gte=0"`
}

type AMQPConfig struct {
	// URL of the broker; empty disables event publishing.
	URL      string `koanf:"url"`
	Exchange string `koanf:"exchange" validate:"required"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.env":                     "development",
		"app.log_level":               "info",
		"app.read_only":               false,
		"server.port":                 "8080",
		"server.read_timeout":         10 * time.Second,
		"server.write_timeout":        10 * time.Second,
		"server.idle_timeout":         60 * time.Second,
		"server.cors_allowed_origins": []string{},
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_conns":          10,
		"cache.ttl":                   time.Minute,
		"amqp.exchange":               "budget.events",
	}
}

// envKey maps BUDGET_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Load reads .env (when present) and the process environment into a
// validated Config.
func Load() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
