// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultRealizationRefreshSchedule is used when REALIZATION_REFRESH_SCHEDULE is not set.
const DefaultRealizationRefreshSchedule = "@every 15m"

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid absolute URL")
)

// Config is the configuration of the backend.
type Config struct {
	APIURL *url.URL
	DBPath string // Path of the SQLite database file

	// PostgreSQL is used instead of SQLite when DBHost is set
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Cron schedule for the recomputation of plan realizations.
	// An empty schedule disables it.
	RealizationRefreshSchedule string

	// Secret for the bearer tokens of the v1 API.
	// An empty secret disables authentication.
	JWTSecret string
}

// Load reads the configuration from the environment.
//
// Variables from the .env files are loaded first, if they exist. They do
// not override variables that are already set. Without files, ".env" in the
// working directory is used.
func Load(files ...string) (Config, error) {
	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msg("no .env file found, using the environment only")
	} else if err != nil {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, ErrAPIURLInvalid
	}

	c := Config{
		APIURL:     u,
		DBPath:     getenv("DB_PATH", filepath.Join("data", "sikuang.db")),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "sikuang"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	// An explicitly empty schedule disables the job
	schedule, ok := os.LookupEnv("REALIZATION_REFRESH_SCHEDULE")
	if !ok {
		schedule = DefaultRealizationRefreshSchedule
	}
	c.RealizationRefreshSchedule = schedule

	return c, nil
}

// UsePostgres reports if PostgreSQL is configured.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for PostgreSQL.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
