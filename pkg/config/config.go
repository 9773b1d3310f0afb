// Package config loads application settings from a .env file and the
// process environment. Everything has a default; a missing .env is normal.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the app.
type Config struct {
	// DataDir is where the persisted ledgers live.
	DataDir string
	// LogFile receives structured logs; stdout belongs to the terminal UI.
	LogFile string
	// FastBacktests skips the simulated backtest latency. Dev convenience.
	FastBacktests bool
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return Config{
		DataDir:       getEnv("STOCKSCOPE_DATA_DIR", "./data"),
		LogFile:       getEnv("STOCKSCOPE_LOG_FILE", "stockscope.log"),
		FastBacktests: getBool("STOCKSCOPE_FAST", false),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a boolean, using %v", key, v, fallback)
		return fallback
	}
	return b
}
