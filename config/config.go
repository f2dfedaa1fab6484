package config

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	AppEnv       string
	DBPath       string
	GeminiAPIKey string
	GeminiModel  string
	AuthSecret   string
}

func Load() AppConfig {
	// Load .env if present; env vars win.
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:         get("PORT", "8080"),
		AppEnv:       get("APP_ENV", "dev"),
		DBPath:       get("DB_PATH", "sqlprep.db"),
		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-1.5-flash"),
		AuthSecret:   get("AUTH_SECRET", ""),
	}
}
