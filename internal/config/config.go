package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits the CORS origin list
)

// devJWTSecret is the fallback signing secret for local development.
// Production refuses to start without an explicit JWT_SECRET; this
// value must never reach a real deployment.
const devJWTSecret = "dev-only-secret-change-me"

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Defaults mirror the
// original deployment: port 3001, 24h tokens, a dist/ SPA bundle.
type Config struct {
	Env           string   // application environment (e.g. "development", "production")
	Port          string   // HTTP port to listen on
	JWTSecret     string   // secret used to sign JWTs
	TokenTTLHours int      // access token time-to-live in hours
	BcryptCost    int      // bcrypt cost for password hashing
	StaticDir     string   // directory holding the built SPA bundle
	CORSOrigins   []string // allowed CORS origins
}

// Load reads configuration values from environment variables and
// returns a Config.  Unlike database-backed deployments nothing here
// is strictly required except the signing secret in production.
func Load() Config {
	cfg := Config{
		Env:           getenv("APP_ENV", "development"),
		Port:          getenv("PORT", "3001"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTLHours: envInt("TOKEN_TTL_HOURS", 24),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		StaticDir:     getenv("STATIC_DIR", "dist"),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", defaultOrigins)),
	}
	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		log.Println("WARNING: JWT_SECRET not set, using the development fallback secret")
		cfg.JWTSecret = devJWTSecret
	}
	return cfg
}

// defaultOrigins covers local dev servers and the hosted site.
const defaultOrigins = "http://localhost:5173,http://localhost:8080,http://localhost:3000,https://makeup-neill.onrender.com"

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getenv retrieves an environment variable with a default value.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt is like getenv but converts the value into an integer,
// keeping the default when conversion fails.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid int for %s: %q, using %d", key, v, def)
		return def
	}
	return n
}
