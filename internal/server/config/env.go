package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. An optional
// .env file in the working directory is loaded first; real environment
// variables win over the file per godotenv semantics.
//
// Recognized variables:
//
//	TASKKEEP_ADDR              HTTP bind address (e.g. ":5001")
//	TASKKEEP_DATABASE_DSN      PostgreSQL DSN
//	TASKKEEP_SECRET_KEY        JWT HMAC secret
//	TASKKEEP_TOKEN_VALIDITY    token lifetime in hours
//	TASKKEEP_ALLOWED_ORIGINS   comma-separated CORS origins
//	TASKKEEP_ENV               environment name (development/production)
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setEnvString(&config.EndpointAddrHTTP, "TASKKEEP_ADDR")
	setEnvString(&config.DatabaseDSN, "TASKKEEP_DATABASE_DSN")
	setEnvString(&config.SecretKey, "TASKKEEP_SECRET_KEY")
	setEnvString(&config.AllowedOrigins, "TASKKEEP_ALLOWED_ORIGINS")
	setEnvString(&config.Environment, "TASKKEEP_ENV")

	if v := os.Getenv("TASKKEEP_TOKEN_VALIDITY"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			config.TokenValidityDuration = time.Duration(hours) * time.Hour
		}
	}
}

func setEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
