// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// openTestDB opens an isolated in-memory database with the full schema and
// the seeded category types.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// One in-memory sqlite database exists per connection; pin the pool to a
	// single connection so every query and the pragma below see the same one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryTypeModel{},
		&model.CategoryModel{},
		&model.UserCategoryModel{},
		&model.TransactionModel{},
		&model.TransactionCategoryModel{},
	)
	if err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	seeds := model.SeedCategoryTypes()
	if err := db.Create(&seeds).Error; err != nil {
		t.Fatalf("seeding category types: %v", err)
	}

	return db
}
