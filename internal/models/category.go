package models

// Category groups products and links back to its navigation node.
// NavItemID is nullable; sync-categories reports and repairs orphans.
type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;size:255" json:"name"`
	NavItemID *uint  `gorm:"index" json:"nav_item_id"`
}
