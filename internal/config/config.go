// Package config loads application configuration from an optional YAML
// file plus environment variables (a .env file is honored when present).
package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the root configuration structure.
type Config struct {
	Env         string        `yaml:"env" env:"ENV" env-default:"dev"`
	HTTPAddr    string        `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8080"`
	MetricsAddr string        `yaml:"metrics_addr" env:"METRICS_ADDR" env-default:":8081"`
	DatabaseDSN string        `yaml:"database_dsn" env:"DATABASE_DSN" env-required:"true"`
	RedisAddr   string        `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	SessionTTL  time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`
}

// MustLoad reads the config and exits on failure. The config file path
// comes from CONFIG_PATH or the --config flag; with neither set, only
// the environment is read.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		path := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *path
	}

	var cfg Config
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatal().Str("path", configPath).Msg("Config file does not exist")
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatal().Err(err).Msg("Cannot read config")
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Cannot read config from environment")
	}
	return &cfg
}
