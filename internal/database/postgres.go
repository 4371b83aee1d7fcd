// internal/database/postgres.go
package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

// NewPgxPool builds a PostgreSQL connection pool from the DB_* environment
// variables, tunes the pool parameters and verifies the connection with a
// ping before returning it.
func NewPgxPool() (*pgxpool.Pool, error) {
	zlog.Info().Msg("Initializing PostgreSQL connection pool...")

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSSLMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		zlog.Error().Msg("One or more required database environment variables (DB_HOST, DB_PORT, DB_USER, DB_NAME) are not set.")
		return nil, fmt.Errorf("missing required database configuration environment variables")
	}
	if dbSSLMode == "" {
		dbSSLMode = "disable"
		zlog.Warn().Msg("DB_SSLMODE environment variable not set, defaulting to 'disable'. Consider setting it explicitly for production.")
	}

	// Keep the password out of logs.
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	dsnLoggable := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
		dbHost, dbPort, dbUser, dbName, dbSSLMode)
	zlog.Debug().Str("dsn_loggable", dsnLoggable).Msg("Constructed database DSN")

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		zlog.Error().Err(err).Str("dsn_loggable", dsnLoggable).Msg("Failed to parse database DSN")
		return nil, fmt.Errorf("unable to parse database configuration: %w", err)
	}

	// Pool tuning. Defaults are fine for development; adjust per workload in
	// production.
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute
	config.ConnConfig.ConnectTimeout = 5 * time.Second
	zlog.Debug().
		Int32("max_conns", config.MaxConns).
		Int32("min_conns", config.MinConns).
		Dur("max_conn_lifetime", config.MaxConnLifetime).
		Dur("max_conn_idle_time", config.MaxConnIdleTime).
		Dur("health_check_period", config.HealthCheckPeriod).
		Dur("connect_timeout", config.ConnConfig.ConnectTimeout).
		Msg("Connection pool parameters set")

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		zlog.Error().Err(err).Msg("Failed to create database connection pool")
		return nil, fmt.Errorf("unable to create database connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = pool.Ping(pingCtx); err != nil {
		zlog.Error().Err(err).Msg("Database ping failed. Closing unusable pool.")
		pool.Close()
		return nil, fmt.Errorf("unable to ping database after pool creation: %w", err)
	}

	zlog.Info().Msg("Successfully connected to PostgreSQL database and verified connection pool!")
	return pool, nil
}
