package services

import (
	"testing"

	"github.com/jobnest/jobnest/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database per test. The pool is capped
// at one connection: every extra SQLite connection would otherwise see its
// own empty in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("accessing test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Job{}, &models.Bid{}, &models.Category{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}
