package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  It is built once in
// main and passed by reference to the components that need it; nothing
// reads the environment after startup.  Every field has a development
// default so the server can boot with an empty environment, matching
// how the rest of the deployment tooling expects it to behave.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host; empty disables persistence
	DBPort string // database port number
	DBName string // database name

	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for the seed credential hash

	SeedUsername string // login name of the single seeded account
	SeedPassword string // plaintext seed credential, hashed at boot
}

// Load reads configuration from the environment, applying defaults for
// anything unset.  The JWT secret default matches the development value
// shipped with the frontend; deployments must override it.
func Load() Config {
	return Config{
		Env:  envStr("APP_ENV", "dev"),
		Port: envStr("APP_PORT", "8000"),

		DBUser: envStr("DB_USER", "plotvista"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: os.Getenv("DB_HOST"),
		DBPort: envStr("DB_PORT", "3306"),
		DBName: envStr("DB_NAME", "plotvista"),

		JWTSecret:    envStr("JWT_SECRET", "your-secret-key-here-change-in-production"),
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 30),
		BcryptCost:   envInt("BCRYPT_COST", 10),

		SeedUsername: envStr("SEED_USERNAME", "manager"),
		SeedPassword: envStr("SEED_PASSWORD", "manager123"),
	}
}

// Shared env helpers; also used by the cache and rate-limit loaders.

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
