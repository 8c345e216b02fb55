// Package config loads geoquest settings from the environment and an
// optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/geoquest/internal/llm"
)

// DefaultStartingCoins is the balance of a freshly created player.
const DefaultStartingCoins = 250

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath().
	DBPath string
	// User is the player name; empty means the OS user.
	User string

	LogLevel  string
	LogFormat string
	// LogFile receives logs while the TUI owns the terminal. Empty means
	// geoquest.log next to the database.
	LogFile string

	StartingCoins int
	HintsEnabled  bool

	LLM llm.Config
}

// Load reads configuration from environment variables with defaults.
// A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:        getEnv("GEOQUEST_DB", ""),
		User:          getEnv("GEOQUEST_USER", ""),
		LogLevel:      getEnv("GEOQUEST_LOG_LEVEL", "info"),
		LogFormat:     getEnv("GEOQUEST_LOG_FORMAT", "json"),
		LogFile:       getEnv("GEOQUEST_LOG_FILE", ""),
		StartingCoins: getEnvInt("GEOQUEST_STARTING_COINS", DefaultStartingCoins),
		HintsEnabled:  getEnvBool("GEOQUEST_HINTS", true),
		LLM:           llm.ConfigFromEnv(),
	}
	if cfg.StartingCoins < 0 {
		cfg.StartingCoins = 0
	}
	if cfg.User == "" {
		cfg.User = osUser()
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvBool accepts strconv booleans plus on/off and yes/no.
func getEnvBool(key string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return fallback
	case "on", "yes", "y":
		return true
	case "off", "no", "n":
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func osUser() string {
	for _, k := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "player"
}
