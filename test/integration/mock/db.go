// Package mock provides in-process stand-ins for the external services the
// integration suite needs.
package mock

import (
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps an in-memory sqlite database migrated to the application schema.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the shared in-memory database, migrating and seeding it on
// first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	// One in-memory sqlite database exists per connection; pin the pool to a
	// single connection so every query and the pragma below see the same one.
	sqlDB, err := conn.DB()
	if err != nil {
		panic("failed to get sql.DB: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(1)

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		panic("failed to enable foreign keys: " + err.Error())
	}

	if err := conn.AutoMigrate(
		&model.UserModel{},
		&model.CategoryTypeModel{},
		&model.CategoryModel{},
		&model.UserCategoryModel{},
		&model.TransactionModel{},
		&model.TransactionCategoryModel{},
	); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{DbConn: conn}
}

// Clear removes all rows and restores the category type seed, leaving the
// schema in place for the next scenario.
func (d *Db) Clear() error {
	// Children first since foreign keys are enforced.
	tables := []string{
		"transaction_categories",
		"transactions",
		"user_categories",
		"categories",
		"users",
		"category_types",
	}
	for _, table := range tables {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	if err := d.DbConn.Exec("DELETE FROM sqlite_sequence").Error; err != nil {
		// sqlite_sequence only exists once an autoincrement row was written.
		if !strings.Contains(err.Error(), "no such table") {
			return err
		}
	}

	for _, categoryType := range model.SeedCategoryTypes() {
		if err := d.DbConn.Create(&categoryType).Error; err != nil {
			return fmt.Errorf("failed to seed category type %s: %w", categoryType.Name, err)
		}
	}
	return nil
}
