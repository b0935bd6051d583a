package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"StoreFront/internal/model"
)

func int64p(v int64) *int64 { return &v }

func seedProducts(t *testing.T, r ProductRepository) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []*model.Product{
		{ID: "p1", Key: "tee", Name: "Basic Tee", Description: "cotton", Price: 1299, Currency: "USD", Size: "S", CategoryID: "cat-apparel"},
		{ID: "p2", Key: "hoodie", Name: "Warm Hoodie", Description: "fleece", Price: 4599, Currency: "USD", Size: "L", CategoryID: "cat-apparel"},
		{ID: "p3", Key: "sneakers", Name: "City Sneakers", Description: "shoes", Price: 7999, Currency: "USD", Size: "M", CategoryID: "cat-shoes"},
	} {
		assert.NoError(t, r.Create(ctx, p))
	}
}

func TestProductRepository_GetByIDAndKey(t *testing.T) {
	r := NewProductRepository(newTestDB(t))
	seedProducts(t, r)
	ctx := context.Background()

	p, err := r.GetByID(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Basic Tee", p.Name)

	p, err = r.GetByKey(ctx, "hoodie")
	assert.NoError(t, err)
	assert.Equal(t, "p2", p.ID)

	_, err = r.GetByID(ctx, "missing")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestProductRepository_SearchFilters(t *testing.T) {
	r := NewProductRepository(newTestDB(t))
	seedProducts(t, r)
	ctx := context.Background()

	// по категории
	res, total, err := r.Search(ctx, SearchQuery{CategoryID: "cat-apparel"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, res, 2)

	// по диапазону цены (минорные единицы)
	res, total, err = r.Search(ctx, SearchQuery{PriceMin: int64p(2000), PriceMax: int64p(8000)})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, p := range res {
		assert.GreaterOrEqual(t, p.Price, int64(2000))
		assert.LessOrEqual(t, p.Price, int64(8000))
	}

	// по размерам
	res, _, err = r.Search(ctx, SearchQuery{Sizes: []string{"S", "M"}})
	assert.NoError(t, err)
	assert.Len(t, res, 2)

	// по тексту, без учёта регистра
	res, _, err = r.Search(ctx, SearchQuery{Text: "hoodie"})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "p2", res[0].ID)
}

func TestProductRepository_SearchPaginationAndSort(t *testing.T) {
	r := NewProductRepository(newTestDB(t))
	seedProducts(t, r)
	ctx := context.Background()

	// сортировка по умолчанию — цена по возрастанию
	res, total, err := r.Search(ctx, SearchQuery{Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total, "total считается до LIMIT")
	assert.Len(t, res, 2)
	assert.Equal(t, "p1", res[0].ID)
	assert.Equal(t, "p2", res[1].ID)

	// вторая страница
	res, _, err = r.Search(ctx, SearchQuery{Limit: 2, Offset: 2})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "p3", res[0].ID)

	// цена по убыванию
	res, _, err = r.Search(ctx, SearchQuery{Sort: "price desc"})
	assert.NoError(t, err)
	assert.Equal(t, "p3", res[0].ID)
}

func TestCategoryRepository(t *testing.T) {
	r := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	assert.NoError(t, r.Create(ctx, &model.Category{ID: "c1", Key: "apparel", Name: "Apparel"}))
	assert.NoError(t, r.Create(ctx, &model.Category{ID: "c2", Key: "shoes", Name: "Shoes"}))

	list, total, err := r.List(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	c, err := r.GetByID(ctx, "c1")
	assert.NoError(t, err)
	assert.Equal(t, "Apparel", c.Name)

	_, err = r.GetByID(ctx, "nope")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestDiscountRepository(t *testing.T) {
	r := NewDiscountRepository(newTestDB(t))
	ctx := context.Background()

	assert.NoError(t, r.Create(ctx, &model.DiscountCode{ID: "d1", Key: "summer", Code: "SUMMER10", IsActive: true}))

	d, err := r.GetByID(ctx, "d1")
	assert.NoError(t, err)
	assert.Equal(t, "SUMMER10", d.Code)

	d, err = r.GetByKey(ctx, "summer")
	assert.NoError(t, err)
	assert.Equal(t, "d1", d.ID)

	list, total, err := r.List(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}

func TestCustomerRepository_UniqueEmail(t *testing.T) {
	r := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	c, err := r.CreateCustomer(ctx, &model.Customer{Email: "john@shop.io", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, c.ID)

	got, err := r.GetByEmail(ctx, "john@shop.io")
	assert.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	// уникальный email — вторая вставка должна дать ошибку
	_, err = r.CreateCustomer(ctx, &model.Customer{Email: "john@shop.io", Password: "x"})
	assert.Error(t, err)

	_, err = r.GetByEmail(ctx, "ghost@shop.io")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestSeedDemoCatalog_Idempotent(t *testing.T) {
	db := newTestDB(t)
	products := NewProductRepository(db)
	categories := NewCategoryRepository(db)
	discounts := NewDiscountRepository(db)
	ctx := context.Background()

	assert.NoError(t, SeedDemoCatalog(ctx, products, categories, discounts))
	n1, err := products.Count(ctx)
	assert.NoError(t, err)
	assert.Greater(t, n1, int64(0))

	// повторный вызов ничего не добавляет
	assert.NoError(t, SeedDemoCatalog(ctx, products, categories, discounts))
	n2, _ := products.Count(ctx)
	assert.Equal(t, n1, n2)
}
