package postgres

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Settings describe how to reach the database.
type Settings struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
	// LogLevel of gorm's SQL logger; zero means warnings only.
	LogLevel logger.LogLevel
}

// DSN renders the PostgreSQL connection string.
func (s Settings) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Name, s.SSLMode,
	)
}

// Open connects with error translation enabled, so constraint violations
// surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(s Settings) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch s.Driver {
	case DriverPostgres, "":
		dialector = gormpostgres.Open(s.DSN())
	case DriverSQLite:
		if s.SQLitePath == "" {
			return nil, errs.NewValueIsRequiredError("SQLITE_PATH")
		}
		dialector = sqlite.Open(s.SQLitePath)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("DB_DRIVER", fmt.Errorf("unsupported driver %q", s.Driver))
	}

	level := s.LogLevel
	if level == 0 {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	if s.Driver == DriverSQLite {
		// a single connection keeps in-memory databases shared and
		// serialises writers the way row locks do on PostgreSQL
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
