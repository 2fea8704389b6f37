package cmd

import (
	"errors"
	"log/slog"
	"strings"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm/logger"
)

type Config struct {
	HTTPPort   string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string
	LogLevel   string
}

// Validate reports every missing setting the selected driver needs.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}

	switch c.driver() {
	case postgres.DriverPostgres:
		for _, setting := range []struct{ name, value string }{
			{"DB_HOST", c.DBHost},
			{"DB_PORT", c.DBPort},
			{"DB_USER", c.DBUser},
			{"DB_NAME", c.DBName},
			{"DB_SSLMODE", c.DBSslMode},
		} {
			if setting.value == "" {
				problems = append(problems, errs.NewValueIsRequiredError(setting.name))
			}
		}
	case postgres.DriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, errs.NewValueIsRequiredError("SQLITE_PATH"))
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidError("DB_DRIVER"))
	}

	return errors.Join(problems...)
}

func (c Config) driver() string {
	if c.DBDriver == "" {
		return postgres.DriverPostgres
	}
	return strings.ToLower(c.DBDriver)
}

// DatabaseSettings maps the configuration onto the storage adapter.
func (c Config) DatabaseSettings() postgres.Settings {
	gormLevel := logger.Warn
	if c.SlogLevel() == slog.LevelDebug {
		gormLevel = logger.Info
	}

	return postgres.Settings{
		Driver:     c.driver(),
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.SQLitePath,
		LogLevel:   gormLevel,
	}
}

// SlogLevel parses LOG_LEVEL; unknown or empty values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
