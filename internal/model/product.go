package model

// Product — проекция товара каталога. Одна и та же форма используется
// сервером (gorm) и клиентом (json-декодирование ответов API).
type Product struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Key         string `gorm:"uniqueIndex" json:"key,omitempty"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug,omitempty"`

	// Price в минорных единицах валюты (центах)
	Price    int64  `gorm:"not null" json:"price"`
	Currency string `gorm:"not null;default:USD" json:"currency"`

	Size string `gorm:"index" json:"size,omitempty"`

	CategoryID string    `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

// PagedProducts — страница результатов поиска товаров.
type PagedProducts struct {
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
	Count   int       `json:"count"`
	Total   int64     `json:"total"`
	Results []Product `json:"results"`
}
