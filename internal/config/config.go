package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	JWTSecret       string
	JWTAlgorithm    string
	TokenTTLMinutes int
}

// LoadConfig reads configuration from the environment (and an optional .env
// file). The signing secret, algorithm and token TTL carry no defaults: a
// misconfigured process must fail at startup rather than run insecurely.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:       os.Getenv("DB_HOST"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       os.Getenv("DB_PORT"),
		AppPort:      os.Getenv("APP_PORT"),
		AppEnv:       os.Getenv("APP_ENV"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: os.Getenv("JWT_ALGORITHM"),
	}

	if cfg.DBHost == "" {
		return nil, fmt.Errorf("DB_HOST is not set")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.JWTAlgorithm == "" {
		return nil, fmt.Errorf("JWT_ALGORITHM is not set")
	}

	raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")
	if raw == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES is not set")
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer, got %q", raw)
	}
	cfg.TokenTTLMinutes = minutes

	return cfg, nil
}
