package service

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"StoreFront/internal/model"
	"StoreFront/internal/repo"
)

const (
	defaultLimit = 8
	maxLimit     = 100
)

// CatalogService инкапсулирует бизнес-логику каталога: поиск товаров,
// категории и промокоды. Разбор query-строки поиска тоже живёт здесь,
// чтобы хендлеры оставались тонкими.
type CatalogService struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	discounts  repo.DiscountRepository
}

func NewCatalogService(p repo.ProductRepository, c repo.CategoryRepository, d repo.DiscountRepository) *CatalogService {
	return &CatalogService{products: p, categories: c, discounts: d}
}

var (
	categoryFilterRe = regexp.MustCompile(`^categories\.id:"([^"]+)"$`)
	priceFilterRe    = regexp.MustCompile(`^variants\.price\.centAmount:range \((\d+) to (\d+)\)$`)
	sizeFilterRe     = regexp.MustCompile(`^variants\.attributes\.size:(.+)$`)
	quotedValueRe    = regexp.MustCompile(`"([^"]*)"`)
)

// ParseSearchQuery переводит query-строку поиска проекций товаров в
// нормализованный repo.SearchQuery. Неизвестные параметры игнорируются,
// битые числовые значения откатываются к значениям по умолчанию.
func ParseSearchQuery(values url.Values) repo.SearchQuery {
	q := repo.SearchQuery{Limit: defaultLimit}

	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v > 0 {
		q.Limit = v
		if q.Limit > maxLimit {
			q.Limit = maxLimit
		}
	}
	if v, err := strconv.Atoi(values.Get("offset")); err == nil && v > 0 {
		q.Offset = v
	}
	q.Sort = values.Get("sort")

	for _, f := range values["filter"] {
		switch {
		case categoryFilterRe.MatchString(f):
			q.CategoryID = categoryFilterRe.FindStringSubmatch(f)[1]
		case priceFilterRe.MatchString(f):
			m := priceFilterRe.FindStringSubmatch(f)
			if lo, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				if hi, err := strconv.ParseInt(m[2], 10, 64); err == nil {
					q.PriceMin = &lo
					q.PriceMax = &hi
				}
			}
		case sizeFilterRe.MatchString(f):
			raw := sizeFilterRe.FindStringSubmatch(f)[1]
			for _, m := range quotedValueRe.FindAllStringSubmatch(raw, -1) {
				if s := strings.TrimSpace(m[1]); s != "" {
					q.Sizes = append(q.Sizes, s)
				}
			}
		}
	}

	// text.<locale> — полнотекстовый запрос; локаль нам не важна,
	// ищем по имени и описанию. Фраза может приходить в кавычках.
	for key, vals := range values {
		if strings.HasPrefix(key, "text.") && len(vals) > 0 {
			q.Text = strings.Trim(vals[0], `"`)
			break
		}
	}
	return q
}

// SearchProducts выполняет поиск и упаковывает результат в страницу.
func (s *CatalogService) SearchProducts(ctx context.Context, values url.Values) (*model.PagedProducts, error) {
	q := ParseSearchQuery(values)
	res, total, err := s.products.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.Product{}
	}
	return &model.PagedProducts{
		Limit:   q.Limit,
		Offset:  q.Offset,
		Count:   len(res),
		Total:   total,
		Results: res,
	}, nil
}

func (s *CatalogService) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *CatalogService) ProductByKey(ctx context.Context, key string) (*model.Product, error) {
	return s.products.GetByKey(ctx, key)
}

func (s *CatalogService) Categories(ctx context.Context, limit int) (*model.PagedCategories, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	res, total, err := s.categories.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.Category{}
	}
	return &model.PagedCategories{Limit: limit, Count: len(res), Total: total, Results: res}, nil
}

func (s *CatalogService) CategoryByID(ctx context.Context, id string) (*model.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CatalogService) DiscountCodes(ctx context.Context, limit int) (*model.PagedDiscountCodes, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	res, total, err := s.discounts.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.DiscountCode{}
	}
	return &model.PagedDiscountCodes{Limit: limit, Count: len(res), Total: total, Results: res}, nil
}

func (s *CatalogService) DiscountByID(ctx context.Context, id string) (*model.DiscountCode, error) {
	return s.discounts.GetByID(ctx, id)
}

func (s *CatalogService) DiscountByKey(ctx context.Context, key string) (*model.DiscountCode, error) {
	return s.discounts.GetByKey(ctx, key)
}
