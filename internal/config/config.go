package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port      int    `envconfig:"PORT" default:"3000"`
	SecretKey string `envconfig:"SECRET_KEY"`

	DB struct {
		Driver  string `envconfig:"DB_DRIVER" default:"sqlite"`
		Path    string `envconfig:"DB_PATH" default:"movies.db"`
		Name    string `envconfig:"DB_NAME"`
		Host    string `envconfig:"DB_HOST"`
		Port    int    `envconfig:"DB_PORT"`
		User    string `envconfig:"DB_USER"`
		Pass    string `envconfig:"DB_PASSWORD"`
		SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	TMDB struct {
		APIKey string `envconfig:"TMDB_API_KEY"`
	}
}

func Load() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
