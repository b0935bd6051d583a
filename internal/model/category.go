package model

// Category — категория каталога.
type Category struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Key      string `gorm:"uniqueIndex" json:"key,omitempty"`
	Name     string `gorm:"not null" json:"name"`
	Slug     string `json:"slug,omitempty"`
	ParentID string `gorm:"type:uuid;index" json:"parentId,omitempty"`
}

// PagedCategories — страница категорий.
type PagedCategories struct {
	Limit   int        `json:"limit"`
	Count   int        `json:"count"`
	Total   int64      `json:"total"`
	Results []Category `json:"results"`
}
