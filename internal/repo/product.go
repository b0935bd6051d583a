package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"StoreFront/internal/model"
)

// SearchQuery — нормализованный поисковый запрос к каталогу.
type SearchQuery struct {
	Limit  int
	Offset int
	Sort   string // "price asc" | "price desc" | "name asc" | "name desc"

	CategoryID string
	// Диапазон цены в минорных единицах; nil — фильтра нет.
	PriceMin *int64
	PriceMax *int64
	Sizes    []string
	Text     string
}

// ProductRepository — контракт доступа к товарам для слоя сервиса.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByKey(ctx context.Context, key string) (*model.Product, error)
	Search(ctx context.Context, q SearchQuery) ([]model.Product, int64, error)
	Create(ctx context.Context, p *model.Product) error
	Count(ctx context.Context) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository создаёт реализацию репозитория товаров.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) GetByKey(ctx context.Context, key string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Search применяет фильтры и пагинацию; total считается до LIMIT/OFFSET.
func (r *productRepo) Search(ctx context.Context, q SearchQuery) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if q.CategoryID != "" {
		tx = tx.Where("category_id = ?", q.CategoryID)
	}
	if q.PriceMin != nil {
		tx = tx.Where("price >= ?", *q.PriceMin)
	}
	if q.PriceMax != nil {
		tx = tx.Where("price <= ?", *q.PriceMax)
	}
	if len(q.Sizes) > 0 {
		tx = tx.Where("size IN ?", q.Sizes)
	}
	if q.Text != "" {
		needle := "%" + strings.ToLower(q.Text) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Order(orderClause(q.Sort))
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	var res []model.Product
	if err := tx.Find(&res).Error; err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

// orderClause переводит ключ сортировки в безопасный ORDER BY.
func orderClause(sort string) string {
	switch strings.TrimSpace(strings.ToLower(sort)) {
	case "price desc":
		return "price DESC"
	case "name asc":
		return "name ASC"
	case "name desc":
		return "name DESC"
	default:
		return "price ASC"
	}
}
