package db

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// sqlxDriverNames maps config drivers to the database/sql driver names gorm registers,
// which sqlx uses to pick the placeholder style for Rebind.
var sqlxDriverNames = map[string]string{
	"sqlite":   "sqlite3",
	"postgres": "pgx",
}

// NewSQLX wraps the pool opened by GORM for hand-written queries
func NewSQLX(orm *gorm.DB, driver string) *sqlx.DB {
	sqlDB, err := orm.DB()
	if err != nil {
		return nil
	}
	name, ok := sqlxDriverNames[driver]
	if !ok {
		name = driver
	}
	return sqlx.NewDb(sqlDB, name)
}
