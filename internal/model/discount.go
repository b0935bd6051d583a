package model

// DiscountCode — промокод.
type DiscountCode struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Key         string `gorm:"uniqueIndex" json:"key,omitempty"`
	Code        string `gorm:"not null;uniqueIndex" json:"code"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

// PagedDiscountCodes — страница промокодов.
type PagedDiscountCodes struct {
	Limit   int            `json:"limit"`
	Count   int            `json:"count"`
	Total   int64          `json:"total"`
	Results []DiscountCode `json:"results"`
}
