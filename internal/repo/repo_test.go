package repo

import (
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"StoreFront/internal/model"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.Category{}, &model.Product{}, &model.DiscountCode{}, &model.Customer{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	// изолируем tests: cache=shared делит базу между подключениями
	if err := db.Exec("DELETE FROM products; DELETE FROM categories; DELETE FROM discount_codes; DELETE FROM customers;").Error; err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
	return db
}
