package main

import (
	"StoreFront/internal/config"
	"StoreFront/internal/handlers"
	"StoreFront/internal/middleware"
	"StoreFront/internal/repo"
	"StoreFront/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	productRepo := repo.NewProductRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	discountRepo := repo.NewDiscountRepository(gormDB)
	customerRepo := repo.NewCustomerRepository(gormDB)

	// демо-каталог для пустой БД
	if err := repo.SeedDemoCatalog(ctx, productRepo, categoryRepo, discountRepo); err != nil {
		sugar.Fatalw("failed to seed demo catalog", "error", err)
	}

	catalogService := service.NewCatalogService(productRepo, categoryRepo, discountRepo)
	customerService := service.NewCustomerService(customerRepo)

	h := handlers.NewHandler(catalogService, customerService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"ProjectKey", cfg.ProjectKey,
		"DatabaseDSN", cfg.DatabaseDSN,
		"TokenTTL", cfg.TokenTTL,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
