package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const defaultSessionSecret = "change-me-session-secret"

const defaultDSN = "root:@tcp(127.0.0.1:3306)/highwaybus?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"

type Env struct {
	AppAddr          string        `yaml:"app_addr" validate:"required"`
	GinMode          string        `yaml:"gin_mode" validate:"omitempty,oneof=debug release test"`
	DatabaseDSN      string        `yaml:"database_dsn" validate:"required"`
	RedisAddr        string        `yaml:"redis_addr" validate:"omitempty,hostname_port"`
	RedisPassword    string        `yaml:"redis_password"`
	RedisDB          int           `yaml:"redis_db" validate:"gte=0"`
	LocationCacheTTL time.Duration `yaml:"location_cache_ttl" validate:"gte=0"`
	SessionSecret    string        `yaml:"session_secret" validate:"required,min=16"`
	SessionTTL       time.Duration `yaml:"session_ttl" validate:"gt=0"`
	CORSOrigins      []string      `yaml:"cors_allowed_origins"`
	LogFormat        string        `yaml:"log_format" validate:"omitempty,oneof=console json"`
	LogLevel         string        `yaml:"log_level"`
}

// LoadEnv reads the optional CONFIG_FILE overlay first, then lets environment
// variables win, then validates the result.
func LoadEnv() (Env, error) {
	env := Env{
		AppAddr:          ":8080",
		DatabaseDSN:      defaultDSN,
		LocationCacheTTL: 10 * time.Minute,
		SessionSecret:    defaultSessionSecret,
		SessionTTL:       2 * time.Hour,
		LogFormat:        "console",
		LogLevel:         "info",
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return env, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &env); err != nil {
			return env, fmt.Errorf("parse config file: %w", err)
		}
	}

	overrideString(&env.AppAddr, "APP_ADDR")
	overrideString(&env.GinMode, "GIN_MODE")
	overrideString(&env.DatabaseDSN, "DB_DSN")
	overrideString(&env.RedisAddr, "REDIS_ADDR")
	overrideString(&env.RedisPassword, "REDIS_PASSWORD")
	overrideString(&env.SessionSecret, "SESSION_SECRET")
	overrideString(&env.LogFormat, "LOG_FORMAT")
	overrideString(&env.LogLevel, "LOG_LEVEL")

	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return env, fmt.Errorf("REDIS_DB: %w", err)
		}
		env.RedisDB = n
	}
	if err := overrideDuration(&env.SessionTTL, "SESSION_TTL"); err != nil {
		return env, err
	}
	if err := overrideDuration(&env.LocationCacheTTL, "LOCATION_CACHE_TTL"); err != nil {
		return env, err
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		env.CORSOrigins = splitList(v)
	}

	env.LogFormat = strings.ToLower(env.LogFormat)

	if err := validator.New().Struct(env); err != nil {
		return env, fmt.Errorf("invalid configuration: %w", err)
	}

	if env.SessionSecret == defaultSessionSecret {
		if env.GinMode == "release" {
			return env, errors.New("invalid configuration: SESSION_SECRET must be set in release mode")
		}
		log.Warn().Msg("SESSION_SECRET not set, using the built-in development secret")
	}
	return env, nil
}

func overrideString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func overrideDuration(dst *time.Duration, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
