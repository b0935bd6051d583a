package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"StoreFront/internal/cli/api"
	"StoreFront/internal/cli/store"
	"StoreFront/internal/model"
)

type mockCatalogAPI struct{ mock.Mock }

func (m *mockCatalogAPI) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogAPI) GetProductByKey(ctx context.Context, key string) (*model.Product, error) {
	args := m.Called(ctx, key)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogAPI) SearchProducts(ctx context.Context, p api.SearchParams) (*model.PagedProducts, error) {
	args := m.Called(ctx, p)
	if v, ok := args.Get(0).(*model.PagedProducts); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogAPI) GetCategories(ctx context.Context, limit int) (*model.PagedCategories, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).(*model.PagedCategories); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogAPI) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogAPI) GetDiscountCodes(ctx context.Context, limit int) (*model.PagedDiscountCodes, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).(*model.PagedDiscountCodes); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogAPI) GetDiscountByID(ctx context.Context, id string) (*model.DiscountCode, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.DiscountCode); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogAPI) GetDiscountByKey(ctx context.Context, key string) (*model.DiscountCode, error) {
	args := m.Called(ctx, key)
	if v, ok := args.Get(0).(*model.DiscountCode); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ CatalogAPI = (*mockCatalogAPI)(nil)

func newTestCache(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "cache.sqlite"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCatalogService_ProductCachesResult(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	apiMock := &mockCatalogAPI{}
	apiMock.On("GetProductByID", mock.Anything, "p-1").
		Return(&model.Product{ID: "p-1", Name: "Hat", Price: 1500, Currency: "USD"}, nil).Once()

	svc := NewCatalogService(apiMock, cache)

	p, fromCache, err := svc.Product(ctx, "p-1", false)
	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "Hat", p.Name)

	cached, _, err := cache.GetProduct("p-1")
	assert.NoError(t, err)
	assert.Equal(t, "Hat", cached.Name)
	apiMock.AssertExpectations(t)
}

func TestCatalogService_ProductFallsBackToCache(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	assert.NoError(t, cache.SaveProduct(&model.Product{ID: "p-1", Name: "Cached Hat", Currency: "USD"}))

	apiMock := &mockCatalogAPI{}
	apiMock.On("GetProductByID", mock.Anything, "p-1").
		Return(nil, assert.AnError)

	svc := NewCatalogService(apiMock, cache)

	p, fromCache, err := svc.Product(ctx, "p-1", false)
	assert.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, "Cached Hat", p.Name)
}

func TestCatalogService_ProductErrorWithoutCache(t *testing.T) {
	apiMock := &mockCatalogAPI{}
	apiMock.On("GetProductByID", mock.Anything, "p-1").Return(nil, assert.AnError)

	svc := NewCatalogService(apiMock, nil)

	_, _, err := svc.Product(context.Background(), "p-1", false)
	assert.Error(t, err)
}

func TestCatalogService_ProductByKey(t *testing.T) {
	apiMock := &mockCatalogAPI{}
	apiMock.On("GetProductByKey", mock.Anything, "red-hat").
		Return(&model.Product{ID: "p-1", Key: "red-hat", Name: "Hat", Currency: "USD"}, nil)

	svc := NewCatalogService(apiMock, nil)

	p, _, err := svc.Product(context.Background(), "red-hat", true)
	assert.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)
	apiMock.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
}

func TestCatalogService_SearchCachesPage(t *testing.T) {
	cache := newTestCache(t)
	apiMock := &mockCatalogAPI{}
	page := &model.PagedProducts{
		Limit: 8, Count: 2, Total: 2,
		Results: []model.Product{
			{ID: "a", Name: "A", Currency: "USD"},
			{ID: "b", Name: "B", Currency: "USD"},
		},
	}
	apiMock.On("SearchProducts", mock.Anything, mock.Anything).Return(page, nil)

	svc := NewCatalogService(apiMock, cache)
	got, err := svc.Search(context.Background(), api.SearchParams{})
	assert.NoError(t, err)
	assert.Equal(t, 2, got.Count)

	_, _, err = cache.GetProduct("a")
	assert.NoError(t, err)
	_, _, err = cache.GetProduct("b")
	assert.NoError(t, err)
}
