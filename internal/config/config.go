// Package config loads server settings from the process environment
// and optional dotenv files. Precedence, highest first: explicit
// environment variables, .env.local, .env. Every setting has a working
// default, so a bare `medicare-planner serve` always starts.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvMapsAPIKey enables live Google Maps location services.
	EnvMapsAPIKey = "GOOGLE_MAPS_API_KEY"
	// EnvLogLevel sets the stderr log level: debug, info, warn, error.
	EnvLogLevel = "LOG_LEVEL"
)

// dotEnvFiles are read from the working directory, earlier files
// winning on conflicts.
var dotEnvFiles = []string{".env.local", ".env"}

type Config struct {
	MapsAPIKey string
	LogLevel   slog.Level
}

// Load reads the configuration. A missing dotenv file is not an error;
// an unparseable LOG_LEVEL is.
func Load() (*Config, error) {
	fileVals := readDotEnv()

	cfg := &Config{LogLevel: slog.LevelInfo}
	cfg.MapsAPIKey = lookup(fileVals, EnvMapsAPIKey)

	if raw := lookup(fileVals, EnvLogLevel); raw != "" {
		lvl, err := ParseLevel(raw)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// readDotEnv merges the dotenv files without touching the process
// environment.
func readDotEnv() map[string]string {
	merged := make(map[string]string)
	for _, name := range dotEnvFiles {
		vals, err := godotenv.Read(name)
		if err != nil {
			continue
		}
		for k, v := range vals {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged
}

// lookup prefers the process environment over dotenv values. An
// explicitly exported empty string still wins, matching the usual
// "set is set" shell semantics.
func lookup(fileVals map[string]string, key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fileVals[key]
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (use debug, info, warn, or error)", s)
}
