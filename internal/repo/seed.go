package repo

import (
	"context"

	"github.com/google/uuid"

	"StoreFront/internal/model"
)

// SeedDemoCatalog наполняет пустую БД демо-каталогом для локальной
// разработки. Если товары уже есть — ничего не делает.
func SeedDemoCatalog(ctx context.Context, products ProductRepository, categories CategoryRepository, discounts DiscountRepository) error {
	n, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	apparel := &model.Category{ID: uuid.NewString(), Key: "apparel", Name: "Apparel", Slug: "apparel"}
	shoes := &model.Category{ID: uuid.NewString(), Key: "shoes", Name: "Shoes", Slug: "shoes"}
	for _, c := range []*model.Category{apparel, shoes} {
		if err := categories.Create(ctx, c); err != nil {
			return err
		}
	}

	demo := []*model.Product{
		{ID: uuid.NewString(), Key: "basic-tee", Name: "Basic Tee", Description: "Plain cotton t-shirt", Slug: "basic-tee", Price: 1299, Currency: "USD", Size: "S", CategoryID: apparel.ID},
		{ID: uuid.NewString(), Key: "logo-tee", Name: "Logo Tee", Description: "T-shirt with a print", Slug: "logo-tee", Price: 1899, Currency: "USD", Size: "M", CategoryID: apparel.ID},
		{ID: uuid.NewString(), Key: "warm-hoodie", Name: "Warm Hoodie", Description: "Fleece hoodie", Slug: "warm-hoodie", Price: 4599, Currency: "USD", Size: "L", CategoryID: apparel.ID},
		{ID: uuid.NewString(), Key: "city-sneakers", Name: "City Sneakers", Description: "Everyday sneakers", Slug: "city-sneakers", Price: 7999, Currency: "USD", Size: "M", CategoryID: shoes.ID},
		{ID: uuid.NewString(), Key: "trail-runners", Name: "Trail Runners", Description: "Running shoes for trails", Slug: "trail-runners", Price: 10999, Currency: "USD", Size: "L", CategoryID: shoes.ID},
	}
	for _, p := range demo {
		if err := products.Create(ctx, p); err != nil {
			return err
		}
	}

	codes := []*model.DiscountCode{
		{ID: uuid.NewString(), Key: "summer", Code: "SUMMER10", Name: "Summer sale", Description: "10% off", IsActive: true},
		{ID: uuid.NewString(), Key: "welcome", Code: "WELCOME5", Name: "Welcome bonus", Description: "5% off the first order", IsActive: true},
		{ID: uuid.NewString(), Key: "legacy", Code: "OLDCODE", Name: "Expired promo", IsActive: false},
	}
	for _, d := range codes {
		if err := discounts.Create(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
