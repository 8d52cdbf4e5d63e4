package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config carries every runtime setting for the application. It is built
// once in main and passed down explicitly — handlers never read the
// environment themselves.
type Config struct {
	Host          string
	Port          string
	DBPath        string
	TemplatesGlob string
	StaticDir     string

	// FallbackUserID is the actor recorded for writes when no real
	// identity is available. There is no authentication layer; every
	// review and every recipe without an explicit author is attributed
	// to this user.
	FallbackUserID uint

	GinMode string
}

// Load builds a Config from the environment, falling back to the
// defaults the application ships with. A .env file in the working
// directory is honored via godotenv autoload.
func Load() Config {
	return Config{
		Host:           getEnv("RECIPE_HOST", "0.0.0.0"),
		Port:           getEnv("RECIPE_PORT", "5005"),
		DBPath:         getEnv("RECIPE_DB_PATH", "database/meal_sharing.db"),
		TemplatesGlob:  getEnv("RECIPE_TEMPLATES", "templates/*.html"),
		StaticDir:      getEnv("RECIPE_STATIC_DIR", "static"),
		FallbackUserID: uint(getEnvInt("RECIPE_FALLBACK_USER_ID", 1)),
		GinMode:        os.Getenv("GIN_MODE"),
	}
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
