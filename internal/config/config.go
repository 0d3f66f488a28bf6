package config

import (
	"log"
	"os"
)

const (
	defaultDBPath = "./planner.db"
	defaultPort   = "8080"
	defaultAppEnv = "development"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port         string
	DBPath       string
	AppEnv       string
	GeminiAPIKey string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		Port:         os.Getenv("PORT"),
		DBPath:       os.Getenv("DB_PATH"),
		AppEnv:       os.Getenv("APP_ENV"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultAppEnv
	}

	if cfg.GeminiAPIKey == "" {
		log.Print("warning: GEMINI_API_KEY is not set, risk analysis will be unavailable")
	}

	return cfg
}

// IsDev reports whether the app runs in its local development mode.
func (c Config) IsDev() bool {
	return c.AppEnv == defaultAppEnv
}
