package sqlite

import (
	"order-assistant/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens (or creates) the store at path and ensures the schema exists.
// Safe to call on every startup.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// WAL so readers are not blocked during writes
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		return nil, err
	}
	if err := db.Exec("PRAGMA foreign_keys=ON").Error; err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.Order{}, &domain.OrderItem{}); err != nil {
		return nil, err
	}

	return db, nil
}
