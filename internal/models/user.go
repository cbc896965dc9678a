package models

import "time"

// User is a storefront shopper synced from the identity provider webhook.
// The ID is the provider's opaque user id; rows are inserted once and never
// updated by this service.
type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Email     string    `gorm:"size:255" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
