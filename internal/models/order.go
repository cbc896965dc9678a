package models

import "time"

// Order statuses. Stored as text; PATCH /orders only accepts these.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// Order captures a checkout. Contact fields are denormalized at order time
// and do not follow later profile edits. UserID is the identity provider's id.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"user_id"`
	Total     float64   `gorm:"not null" json:"total"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Address   string    `gorm:"size:500" json:"address"`
	Status    string    `gorm:"size:50;default:'Processing'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItem links an order to a product. Price is not snapshotted here;
// listings join the current product row.
type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"not null;index" json:"order_id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}
