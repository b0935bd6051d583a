package api

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Descriptor — описание одного запроса к коммерц-API: метод, путь
// относительно {APIURL}/{ProjectKey} и query-параметры. Конструируется
// заново на каждый вызов и после выполнения не переиспользуется.
type Descriptor struct {
	Method string
	Path   string
	Query  url.Values
}

// SizeFlags — три известных размерных фасета товара.
type SizeFlags struct {
	S bool
	M bool
	L bool
}

// selected возвращает имена выбранных размеров в фиксированном порядке.
func (f SizeFlags) selected() []string {
	var names []string
	if f.S {
		names = append(names, "S")
	}
	if f.M {
		names = append(names, "M")
	}
	if f.L {
		names = append(names, "L")
	}
	return names
}

// SearchParams — типизированные параметры поиска товаров по каталогу.
type SearchParams struct {
	CategoryID string

	Page     int // 1-based; значения меньше 1 трактуются как 1
	PageSize int

	Sort string // например "price asc"

	// Диапазон цены в мажорных единицах (долларах); в фильтр уходит ×100.
	MinPrice      float64
	MaxPrice      float64
	HasPriceRange bool

	Sizes SizeFlags

	// Полнотекстовый поиск: text.<locale>="<фраза>", fuzzy=true, fuzzyLevel=1
	Text   string
	Locale string
}

const (
	defaultPageSize = 8
	defaultSort     = "price asc"
	defaultLocale   = "en"
)

// ProductByID строит запрос проекции товара по id.
func ProductByID(id string) Descriptor {
	return Descriptor{Method: http.MethodGet, Path: "/product-projections/" + id}
}

// ProductByKey строит запрос проекции товара по ключу.
func ProductByKey(key string) Descriptor {
	return Descriptor{Method: http.MethodGet, Path: "/product-projections/key=" + key}
}

// SearchProducts строит поисковый запрос: пагинация, сортировка и
// опциональные фильтры. Чистая функция, без I/O.
func SearchProducts(p SearchParams) Descriptor {
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	sort := p.Sort
	if sort == "" {
		sort = defaultSort
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(size))
	q.Set("offset", strconv.Itoa((page-1)*size))
	q.Set("sort", sort)

	if p.CategoryID != "" {
		q.Add("filter", `categories.id:"`+p.CategoryID+`"`)
	}
	if p.HasPriceRange {
		q.Add("filter", fmt.Sprintf("variants.price.centAmount:range (%d to %d)",
			toCents(p.MinPrice), toCents(p.MaxPrice)))
	}
	if clause, ok := sizeFilter(p.Sizes); ok {
		q.Add("filter", clause)
	}
	if p.Text != "" {
		locale := p.Locale
		if locale == "" {
			locale = defaultLocale
		}
		q.Set("text."+locale, `"`+p.Text+`"`)
		q.Set("fuzzy", "true")
		q.Set("fuzzyLevel", "1")
	}

	return Descriptor{Method: http.MethodGet, Path: "/product-projections/search", Query: q}
}

// sizeFilter возвращает фильтр по размерам. Клауза эмитится только когда
// выбраны один или два размера из трёх: пустой выбор и выбор всех трёх —
// фильтр-пустышка, подавляется.
func sizeFilter(f SizeFlags) (string, bool) {
	names := f.selected()
	if len(names) == 0 || len(names) == 3 {
		return "", false
	}
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, `"`+n+`"`)
	}
	return "variants.attributes.size:" + strings.Join(quoted, ","), true
}

func toCents(major float64) int64 {
	return int64(math.Round(major * 100))
}

// Categories строит запрос списка категорий.
func Categories(limit int) Descriptor {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return Descriptor{Method: http.MethodGet, Path: "/categories", Query: q}
}

// CategoryByID строит запрос категории по id.
func CategoryByID(id string) Descriptor {
	return Descriptor{Method: http.MethodGet, Path: "/categories/" + id}
}

// DiscountCodes строит запрос списка промокодов.
func DiscountCodes(limit int) Descriptor {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return Descriptor{Method: http.MethodGet, Path: "/discount-codes", Query: q}
}

// DiscountByID строит запрос промокода по id.
func DiscountByID(id string) Descriptor {
	return Descriptor{Method: http.MethodGet, Path: "/discount-codes/" + id}
}

// DiscountByKey строит запрос промокода по ключу.
func DiscountByKey(key string) Descriptor {
	return Descriptor{Method: http.MethodGet, Path: "/discount-codes/key=" + key}
}
