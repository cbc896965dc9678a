package models

import "time"

// Product is a catalog entry. OriginalPrice is set only when it exceeds
// Price; the pair drives the storefront's sale badge.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Slug          string    `gorm:"not null;size:255;index" json:"slug"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Image         string    `gorm:"size:500" json:"image"`
	CategoryID    *uint     `gorm:"index" json:"category_id"`
	CreatedAt     time.Time `json:"created_at"`
}
