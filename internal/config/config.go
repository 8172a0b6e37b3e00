// Package config loads application configuration from the environment, with
// an optional .env file picked up via godotenv. Every value has a default
// suitable for running locally; a bad numeric value is a fatal startup error.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all runtime configuration values.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	DataDir        string // directory holding the collection files
	LogFile        string // path of the application log
	JWTSecret      string // secret used to sign session tokens
	SessionTTLMin  int    // session token time-to-live in minutes
	BcryptCost     int    // bcrypt cost for password hashing
	SeedSampleData bool   // whether to insert sample users and flights on startup
}

// Load reads the configuration. A .env file in the working directory is
// honoured when present.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Env:            getenv("APP_ENV", "dev"),
		DataDir:        getenv("DATA_DIR", "data"),
		LogFile:        getenv("LOG_FILE", filepath.Join("logs", "system.log")),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret-change-in-production"),
		SessionTTLMin:  getint("SESSION_TTL_MIN", 60),
		BcryptCost:     getint("BCRYPT_COST", bcrypt.DefaultCost),
		SeedSampleData: getenv("SEED_SAMPLE_DATA", "false") == "true",
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
