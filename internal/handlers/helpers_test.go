package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"

	"StoreFront/internal/config"
	"StoreFront/internal/handlers"
	"StoreFront/internal/middleware"
	"StoreFront/internal/model"
	"StoreFront/internal/repo"
	"StoreFront/internal/service"
)

// newTestRouter поднимает полный роутер поверх in-memory SQLite с демо-каталогом.
func newTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:   "test-secret",
		TokenTTL:     3600,
		ProjectKey:   "storefront-demo",
		ClientID:     "demo-client",
		ClientSecret: "demo-secret",
	}
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)

	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Category{}, &model.Product{}, &model.DiscountCode{}, &model.Customer{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	if err := db.Exec("DELETE FROM products; DELETE FROM categories; DELETE FROM discount_codes; DELETE FROM customers;").Error; err != nil {
		t.Fatalf("clean tables: %v", err)
	}

	products := repo.NewProductRepository(db)
	categories := repo.NewCategoryRepository(db)
	discounts := repo.NewDiscountRepository(db)
	customers := repo.NewCustomerRepository(db)
	if err := repo.SeedDemoCatalog(context.Background(), products, categories, discounts); err != nil {
		t.Fatalf("seed: %v", err)
	}

	catalogSvc := service.NewCatalogService(products, categories, discounts)
	customerSvc := service.NewCustomerService(customers)

	h := handlers.NewHandler(catalogSvc, customerSvc, logger, cfg)
	return h.Router, cfg
}

// testToken выпускает валидный Bearer-токен для тестовой конфигурации.
func testToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := middleware.IssueToken(cfg.ClientID, cfg.AuthSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
