package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel         string
	LogFormat        string
	LogOutput        string
	DBSlowQuery      time.Duration
	DBLogLevel       string
	MigrationsEnable bool

	IdentifierMaxAttempts int
	DeliveryLeadDays      int

	JobsEnabled           bool
	DueDeliveriesSchedule string
}

// DSN is the PostgreSQL connection string in URL form, accepted by both
// pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSslMode)
}

// LoadConfig reads envFile when it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:              v.GetString("HTTP_PORT"),
		DBHost:                v.GetString("DB_HOST"),
		DBPort:                v.GetString("DB_PORT"),
		DBUser:                v.GetString("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBName:                v.GetString("DB_NAME"),
		DBSslMode:             v.GetString("DB_SSLMODE"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		LogFormat:             v.GetString("LOG_FORMAT"),
		LogOutput:             v.GetString("LOG_OUTPUT"),
		DBSlowQuery:           time.Duration(v.GetInt("DB_SLOW_QUERY_MS")) * time.Millisecond,
		DBLogLevel:            v.GetString("DB_LOG_LEVEL"),
		MigrationsEnable:      v.GetBool("MIGRATIONS_ENABLED"),
		IdentifierMaxAttempts: v.GetInt("IDENTIFIER_MAX_ATTEMPTS"),
		DeliveryLeadDays:      v.GetInt("DELIVERY_LEAD_DAYS"),
		JobsEnabled:           v.GetBool("JOBS_ENABLED"),
		DueDeliveriesSchedule: v.GetString("DUE_DELIVERIES_SCHEDULE"),
	}

	if cfg.DeliveryLeadDays < 1 {
		return Config{}, fmt.Errorf("DELIVERY_LEAD_DAYS must be at least 1, got %d", cfg.DeliveryLeadDays)
	}
	if cfg.IdentifierMaxAttempts < 1 {
		return Config{}, fmt.Errorf("IDENTIFIER_MAX_ATTEMPTS must be at least 1, got %d", cfg.IdentifierMaxAttempts)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "atelier")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("DB_SLOW_QUERY_MS", 200)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("MIGRATIONS_ENABLED", true)
	v.SetDefault("IDENTIFIER_MAX_ATTEMPTS", 20)
	v.SetDefault("DELIVERY_LEAD_DAYS", 7)
	v.SetDefault("JOBS_ENABLED", true)
	v.SetDefault("DUE_DELIVERIES_SCHEDULE", "0 8 * * *")
}
