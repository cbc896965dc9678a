package dto

import "encoding/json"

// CreateProductDetailsRequest mirrors the admin detail form. ProductID and
// quantity arrive as json.Number so both "12" and 12 are accepted.
type CreateProductDetailsRequest struct {
	ProductID          json.Number `json:"product_id"`
	Gallery            []string    `json:"gallery"`
	Rating             json.Number `json:"rating"`
	FullDescription    string      `json:"full_description"`
	CareInstructions   string      `json:"care_instructions"`
	Material           string      `json:"material"`
	Fit                string      `json:"fit"`
	Length             string      `json:"length"`
	DiscountPrice      *float64    `json:"discount_price"`
	DiscountPercentage json.Number `json:"discount_percentage"`
	Colors             []string    `json:"colors"`
	Sizes              []string    `json:"sizes"`
	Gender             string      `json:"gender"`
	ModelInfo          string      `json:"model_info"`
	Quantity           json.Number `json:"quantity"`
}

type UpdateProductDetailsRequest struct {
	Gallery            []string `json:"gallery"`
	Rating             float64  `json:"rating"`
	FullDescription    string   `json:"full_description"`
	CareInstructions   string   `json:"care_instructions"`
	Material           string   `json:"material"`
	Fit                string   `json:"fit"`
	Length             string   `json:"length"`
	DiscountPrice      *float64 `json:"discount_price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	Colors             []string `json:"colors"`
	Sizes              []string `json:"sizes"`
	Gender             string   `json:"gender"`
	ModelInfo          string   `json:"model_info"`
	Quantity           int      `json:"quantity"`
}

type ReduceStockResponse struct {
	Message  string `json:"message"`
	Quantity int    `json:"quantity"`
}
