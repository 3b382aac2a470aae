package store

import (
	"database/sql"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name, which
// selects the migration dialect and the duplicate-key error mapping.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
