// Package dbtest gives each test an isolated in-memory database wired into
// the process-wide db.DB, with the same schema and error translation the
// server uses against postgres.
package dbtest

import (
	"testing"
	"yatube/internal/db"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open migrates a fresh in-memory database, points db.DB at it and restores
// the previous handle when the test finishes.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A second pooled connection would get its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	// sqlite only enforces ON DELETE CASCADE / SET NULL with this pragma.
	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	prev := db.DB
	db.DB = conn
	t.Cleanup(func() {
		db.DB = prev
		sqlDB.Close()
	})

	return conn
}
