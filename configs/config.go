// configs/config.go
package configs

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
)

// LoadConfig loads environment variables from a .env file (when present) and
// validates that every required variable is set. Missing required variables
// abort startup with a fatal log.
//
// Variables already present in the environment are never overwritten by .env
// values, so container and orchestrator settings win.
func LoadConfig() {
	fmt.Fprintln(os.Stderr, "[INFO] Loading application configuration...")

	// A missing .env file is fine; the variables may come from the OS
	// environment directly.
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "[WARN] No .env file found or error loading it. Reading environment variables directly.")
	} else {
		fmt.Fprintln(os.Stderr, "[INFO] Loaded environment variables from .env file (if found).")
	}

	requiredVars := []string{
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD", // value may be empty, but the variable must exist
		"DB_NAME",
		"APP_PORT",
		"JWT_SECRET",
		"STRIPE_SECRET_KEY",
		"STRIPE_WEBHOOK_SECRET",
	}

	fmt.Fprintf(os.Stderr, "[INFO] Validating %d required environment variables...\n", len(requiredVars))
	missingVars := []string{}

	for _, varName := range requiredVars {
		if os.Getenv(varName) == "" {
			missingVars = append(missingVars, varName)
			fmt.Fprintf(os.Stderr, "[ERROR] Required environment variable '%s' is not set.\n", varName)
		}
	}

	if len(missingVars) > 0 {
		zlog.Fatal().Strs("missing_variables", missingVars).Msg("Missing required environment variables. Application cannot start.")
	}

	// REDIS_ADDR is optional: without it the gallery cache is disabled and
	// every gallery read goes to the database.
	if os.Getenv("REDIS_ADDR") == "" {
		zlog.Warn().Msg("REDIS_ADDR not set. Gallery caching disabled.")
	}

	zlog.Info().Msg("All required environment variables are set. Configuration loaded successfully.")
}
