package handlers

import (
	"StoreFront/internal/config"
	"StoreFront/internal/middleware"
	"StoreFront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров stub-платформы.
func NewHandler(
	catalogService *service.CatalogService,
	customerService *service.CustomerService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)

	// Handlers
	tokenHandler := NewTokenHandler(logger, config)
	catalogHandler := NewCatalogHandler(catalogService, logger, config)
	customerHandler := NewCustomerHandler(customerService, logger)

	// Token endpoint и signup-форма токена не требуют
	r.Post("/oauth/token", tokenHandler.Issue)
	r.Post("/api/customers/register", customerHandler.Register)
	r.Post("/api/customers/login", customerHandler.Login)

	// Каталог доступен только с валидным Bearer-токеном
	r.Route("/{projectKey}", func(r chi.Router) {
		r.Use(middleware.WithAuth(config.AuthSecret))
		r.Use(catalogHandler.WithProjectKey)

		r.Get("/product-projections/search", catalogHandler.SearchProducts)
		r.Get("/product-projections/{idOrKey}", catalogHandler.GetProduct)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/categories/{id}", catalogHandler.GetCategory)
		r.Get("/discount-codes", catalogHandler.ListDiscountCodes)
		r.Get("/discount-codes/{idOrKey}", catalogHandler.GetDiscountCode)
	})

	return &Handler{Router: r}
}
