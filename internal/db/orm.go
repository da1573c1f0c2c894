package db

import (
	"fmt"
	"time"

	"charter-ops/hangar/internal/config"
	"charter-ops/hangar/internal/logging"
	gormModels "charter-ops/hangar/internal/models/gorm"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database bundles the GORM handle used by repositories with an sqlx handle over the same pool
type Database struct {
	ORM    *gorm.DB
	SQL    *sqlx.DB
	Driver string
}

// Open connects using the configured driver. SQLite is limited to one open connection so
// writers are serialized by the engine and in-memory databases stay on a single connection.
func Open(cfg config.DBConfig) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.Driver)
	}

	orm, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		if err := orm.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}

	database := &Database{
		ORM:    orm,
		SQL:    NewSQLX(orm, cfg.Driver),
		Driver: cfg.Driver,
	}

	logging.Info("Connected to database", "driver", cfg.Driver)
	return database, nil
}

// Migrate creates or updates the accounts, planes, pilots and trips tables
func (d *Database) Migrate() error {
	if err := d.ORM.AutoMigrate(gormModels.AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the shared connection pool
func (d *Database) Close() error {
	sqlDB, err := d.ORM.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
