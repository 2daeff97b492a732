package cmd

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the global settings of the command line.
type Config struct {
	DB        string // SQLite file, bolt://path or postgres:// URL
	Prices    string // reference price file
	LogLevel  string
	LogPretty bool
	Plain     bool // print raw markdown instead of rendering it
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use a global variable.
var cfg = Config{
	DB:       "carteira.db",
	Prices:   "COTAHIST.TXT",
	LogLevel: "warn",
}

// RegisterFlags loads .env if present and declares the global flags on fs.
// Flags default to the CARTEIRA_* environment variables.
func RegisterFlags(fs *flag.FlagSet) {
	_ = godotenv.Load()

	fs.StringVar(&cfg.DB, "db", getEnv("CARTEIRA_DB", cfg.DB), "database: a SQLite file, bolt://<file> or a postgres:// URL (env CARTEIRA_DB)")
	fs.StringVar(&cfg.Prices, "prices", getEnv("CARTEIRA_PRICES", cfg.Prices), "reference price file in COTAHIST layout (env CARTEIRA_PRICES)")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("CARTEIRA_LOG_LEVEL", cfg.LogLevel), "debug, info, warn, error or disabled (env CARTEIRA_LOG_LEVEL)")
	fs.BoolVar(&cfg.LogPretty, "log-pretty", getEnvAsBool("CARTEIRA_LOG_PRETTY", cfg.LogPretty), "human readable logs (env CARTEIRA_LOG_PRETTY)")
	fs.BoolVar(&cfg.Plain, "plain", getEnvAsBool("CARTEIRA_PLAIN", cfg.Plain), "print markdown without terminal styling (env CARTEIRA_PLAIN)")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
