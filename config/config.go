// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	// DBPath is the SQLite file backing the key-value area.
	DBPath string
	// LogPath is an optional file that receives a copy of all log output.
	LogPath string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:  envOrDefault("QUICKSHELF_DB", "quickshelf.sqlite3"),
		LogPath: os.Getenv("QUICKSHELF_LOG"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
