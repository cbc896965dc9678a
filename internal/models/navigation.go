package models

// NavigationItem is a node in the storefront menu tree. Categories are
// navigation nodes with IsCategory set and a linked Category row.
type NavigationItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"not null;size:255" json:"title"`
	Slug       string `gorm:"not null;size:255" json:"slug"`
	ParentID   *uint  `gorm:"index" json:"parent_id"`
	Position   int    `gorm:"default:0" json:"position"`
	IsCategory bool   `gorm:"default:false" json:"is_category"`
}

func (NavigationItem) TableName() string {
	return "navigation"
}
