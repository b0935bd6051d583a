package repo

import (
	"context"

	"gorm.io/gorm"

	"StoreFront/internal/model"
)

// CategoryRepository — контракт доступа к категориям.
type CategoryRepository interface {
	List(ctx context.Context, limit int) ([]model.Category, int64, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория категорий.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) List(ctx context.Context, limit int) ([]model.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	tx := r.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var res []model.Category
	if err := tx.Find(&res).Error; err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}
