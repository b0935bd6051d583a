package service

import (
	"context"

	"StoreFront/internal/cli/api"
	"StoreFront/internal/cli/store"
	"StoreFront/internal/model"
)

// CatalogAPI — часть клиента API, нужная каталожному сервису.
type CatalogAPI interface {
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	GetProductByKey(ctx context.Context, key string) (*model.Product, error)
	SearchProducts(ctx context.Context, p api.SearchParams) (*model.PagedProducts, error)
	GetCategories(ctx context.Context, limit int) (*model.PagedCategories, error)
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	GetDiscountCodes(ctx context.Context, limit int) (*model.PagedDiscountCodes, error)
	GetDiscountByID(ctx context.Context, id string) (*model.DiscountCode, error)
	GetDiscountByKey(ctx context.Context, key string) (*model.DiscountCode, error)
}

// CatalogService объединяет клиент API и локальный кэш товаров.
// Кэш опционален (nil — работа только через API).
type CatalogService struct {
	api   CatalogAPI
	cache *store.Store
}

func NewCatalogService(apiClient CatalogAPI, cache *store.Store) *CatalogService {
	return &CatalogService{api: apiClient, cache: cache}
}

// Product возвращает товар по id или по ключу (byKey=true). При недоступном
// API отдаёт последнюю закэшированную версию; fromCache сообщает об этом.
func (s *CatalogService) Product(ctx context.Context, idOrKey string, byKey bool) (p *model.Product, fromCache bool, err error) {
	if byKey {
		p, err = s.api.GetProductByKey(ctx, idOrKey)
	} else {
		p, err = s.api.GetProductByID(ctx, idOrKey)
	}
	if err != nil {
		if s.cache != nil {
			if cached, _, cacheErr := s.cache.GetProduct(idOrKey); cacheErr == nil {
				return cached, true, nil
			}
		}
		return nil, false, err
	}
	if s.cache != nil {
		// отказ кэша не фатален для вызова
		_ = s.cache.SaveProduct(p)
	}
	return p, false, nil
}

// Search выполняет поиск товаров и кэширует результаты страницы.
func (s *CatalogService) Search(ctx context.Context, params api.SearchParams) (*model.PagedProducts, error) {
	page, err := s.api.SearchProducts(ctx, params)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		for i := range page.Results {
			_ = s.cache.SaveProduct(&page.Results[i])
		}
	}
	return page, nil
}

// Categories возвращает страницу категорий.
func (s *CatalogService) Categories(ctx context.Context, limit int) (*model.PagedCategories, error) {
	return s.api.GetCategories(ctx, limit)
}

// Category возвращает категорию по id.
func (s *CatalogService) Category(ctx context.Context, id string) (*model.Category, error) {
	return s.api.GetCategoryByID(ctx, id)
}

// DiscountCodes возвращает страницу промокодов.
func (s *CatalogService) DiscountCodes(ctx context.Context, limit int) (*model.PagedDiscountCodes, error) {
	return s.api.GetDiscountCodes(ctx, limit)
}

// Discount возвращает промокод по id или по ключу.
func (s *CatalogService) Discount(ctx context.Context, idOrKey string, byKey bool) (*model.DiscountCode, error) {
	if byKey {
		return s.api.GetDiscountByKey(ctx, idOrKey)
	}
	return s.api.GetDiscountByID(ctx, idOrKey)
}
