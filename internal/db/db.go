package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opticode/backend/internal/models"
)

// Open connects to the SQLite database at path and migrates the schema.
// The returned handle is passed explicitly into services and handlers;
// this package keeps no global connection.
func Open(path string) (*gorm.DB, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Ticket{},
		&models.Message{},
		&models.Subscriber{},
		&models.Lead{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// Composite index GORM doesn't auto-create from struct tags: a ticket's
	// thread is always read per-ticket in creation order.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_messages_ticket_created ON messages(ticket_id, created_at)")

	return conn, nil
}
