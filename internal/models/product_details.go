package models

import "gorm.io/datatypes"

// ProductDetails is the optional one-to-one extension of a Product: gallery,
// variants, rich copy and the stock count. A product can exist without a
// details row; the row is keyed and addressed by ProductID.
type ProductDetails struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	ProductID          uint           `gorm:"not null;uniqueIndex" json:"product_id"`
	Gallery            datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"gallery"`
	Rating             float64        `gorm:"type:decimal(2,1);default:0" json:"rating"`
	FullDescription    string         `gorm:"type:text" json:"full_description"`
	CareInstructions   string         `gorm:"type:text" json:"care_instructions"`
	Material           string         `gorm:"size:255" json:"material"`
	Fit                string         `gorm:"size:255" json:"fit"`
	Length             string         `gorm:"size:255" json:"length"`
	DiscountPrice      *float64       `json:"discount_price"`
	DiscountPercentage float64        `gorm:"default:0" json:"discount_percentage"`
	Colors             datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"colors"`
	Sizes              datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"sizes"`
	Gender             string         `gorm:"size:50" json:"gender"`
	ModelInfo          string         `gorm:"size:500" json:"model_info"`
	Quantity           int            `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
}

func (ProductDetails) TableName() string {
	return "product_details"
}
