package repo

import (
	"context"

	"gorm.io/gorm"

	"StoreFront/internal/model"
)

// DiscountRepository — контракт доступа к промокодам.
type DiscountRepository interface {
	List(ctx context.Context, limit int) ([]model.DiscountCode, int64, error)
	GetByID(ctx context.Context, id string) (*model.DiscountCode, error)
	GetByKey(ctx context.Context, key string) (*model.DiscountCode, error)
	Create(ctx context.Context, d *model.DiscountCode) error
}

type discountRepo struct {
	db *gorm.DB
}

// NewDiscountRepository создаёт реализацию репозитория промокодов.
func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepo{db: db}
}

func (r *discountRepo) List(ctx context.Context, limit int) ([]model.DiscountCode, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.DiscountCode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	tx := r.db.WithContext(ctx).Order("code ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var res []model.DiscountCode
	if err := tx.Find(&res).Error; err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (r *discountRepo) GetByID(ctx context.Context, id string) (*model.DiscountCode, error) {
	var d model.DiscountCode
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *discountRepo) GetByKey(ctx context.Context, key string) (*model.DiscountCode, error) {
	var d model.DiscountCode
	if err := r.db.WithContext(ctx).First(&d, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *discountRepo) Create(ctx context.Context, d *model.DiscountCode) error {
	return r.db.WithContext(ctx).Create(d).Error
}
