package repo

import (
	"context"

	"gorm.io/gorm"

	"StoreFront/internal/model"
)

// CustomerRepository — контракт доступа к покупателям.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, c *model.Customer) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

// NewCustomerRepository создаёт реализацию репозитория покупателей.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) CreateCustomer(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
