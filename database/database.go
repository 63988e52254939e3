package database

import (
	"fmt"
	"time"

	"kisan/config"
	"kisan/logger"
	"kisan/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured database, runs migrations and installs it as Database.
func ConnectDb() {
	cfg := config.AppConfig

	db, err := Open(cfg.DBDriver, DSN(cfg))
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", "driver", cfg.DBDriver, "error", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("Failed to get database instance", "error", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", "error", err)
	}

	Database = DbInstance{Db: db}
}

// Open connects to driver ("sqlite", "postgres" or "mysql") using dsn.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(),
	})
}

// gormWriter sends gorm's log lines to the application logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	logger.Log.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}

// NewGormLogger reports slow queries and errors through kisan/logger. Missing
// rows are expected on every 404 and are not logged.
func NewGormLogger() gormLogger.Interface {
	return gormLogger.New(gormWriter{}, gormLogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// DSN builds the connection string for cfg, preferring an explicit DB_DSN.
func DSN(cfg *config.Config) string {
	if cfg.DBDSN != "" {
		return cfg.DBDSN
	}
	switch cfg.DBDriver {
	case "postgres":
		port := cfg.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, port,
		)
	case "mysql":
		port := cfg.DBPort
		if port == "" {
			port = "3306"
		}
		// dates are UTC-midnight values; any other loc shifts DATE columns by a day
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, port, cfg.DBName,
		)
	default:
		// foreign keys are off by default in sqlite
		return fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DBName)
	}
}

// Migrate creates or updates the tables for every record type.
func Migrate(db *gorm.DB) error {
	logger.Log.Info("Running Migrations...")

	err := db.AutoMigrate(
		&models.Farmer{},
		&models.Land{},
		&models.Scheme{},
		&models.SchemeApplication{},
		&models.Feature{},
	)
	if err != nil {
		return err
	}

	logger.Log.Info("Migrations completed successfully.")
	return nil
}
