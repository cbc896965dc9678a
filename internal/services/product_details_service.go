package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrDetailsNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("valid product_id is required")
	ErrInvalidRating    = errors.New("rating must be a valid number")
	ErrInvalidQuantity  = errors.New("quantity must be a non-negative integer")
	ErrOutOfStock       = errors.New("product is out of stock")
)

type ProductDetailsService struct {
	db *gorm.DB
}

func NewProductDetailsService(db *gorm.DB) *ProductDetailsService {
	return &ProductDetailsService{db: db}
}

func (s *ProductDetailsService) Get(productID uint) (*models.ProductDetails, error) {
	var details models.ProductDetails
	if err := s.db.Where("product_id = ?", productID).First(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (s *ProductDetailsService) Create(req *dto.CreateProductDetailsRequest) (*models.ProductDetails, error) {
	productID, err := strconv.Atoi(req.ProductID.String())
	if err != nil || productID <= 0 {
		return nil, ErrInvalidProductID
	}

	rating, err := req.Rating.Float64()
	if err != nil {
		return nil, ErrInvalidRating
	}

	quantity := 0
	if req.Quantity != "" {
		quantity, err = strconv.Atoi(req.Quantity.String())
		if err != nil || quantity < 0 {
			return nil, ErrInvalidQuantity
		}
	}

	discount := 0.0
	if req.DiscountPercentage != "" {
		if discount, err = req.DiscountPercentage.Float64(); err != nil {
			discount = 0
		}
	}

	details := models.ProductDetails{
		ProductID:          uint(productID),
		Gallery:            toJSONList(req.Gallery, []string{"", "", "", ""}),
		Rating:             rating,
		FullDescription:    req.FullDescription,
		CareInstructions:   req.CareInstructions,
		Material:           req.Material,
		Fit:                req.Fit,
		Length:             req.Length,
		DiscountPrice:      req.DiscountPrice,
		DiscountPercentage: discount,
		Colors:             toJSONList(req.Colors, []string{""}),
		Sizes:              toJSONList(req.Sizes, []string{""}),
		Gender:             req.Gender,
		ModelInfo:          req.ModelInfo,
		Quantity:           quantity,
	}

	if err := s.db.Create(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to create product details: %w", err)
	}
	return &details, nil
}

// Update replaces the whole row addressed by product_id.
func (s *ProductDetailsService) Update(productID uint, req *dto.UpdateProductDetailsRequest) (*models.ProductDetails, error) {
	updates := map[string]interface{}{
		"gallery":             toJSONList(req.Gallery, []string{"", "", "", ""}),
		"rating":              req.Rating,
		"full_description":    req.FullDescription,
		"care_instructions":   req.CareInstructions,
		"material":            req.Material,
		"fit":                 req.Fit,
		"length":              req.Length,
		"discount_price":      req.DiscountPrice,
		"discount_percentage": req.DiscountPercentage,
		"colors":              toJSONList(req.Colors, []string{""}),
		"sizes":               toJSONList(req.Sizes, []string{""}),
		"gender":              req.Gender,
		"model_info":          req.ModelInfo,
		"quantity":            req.Quantity,
	}

	result := s.db.Model(&models.ProductDetails{}).Where("product_id = ?", productID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDetailsNotFound
	}
	return s.Get(productID)
}

// Delete is idempotent: deleting a missing row is not an error.
func (s *ProductDetailsService) Delete(productID uint) error {
	return s.db.Where("product_id = ?", productID).Delete(&models.ProductDetails{}).Error
}

// ReduceStock decrements the stock count by one as a single conditional
// update, so concurrent callers can never drive quantity below zero. Returns
// the remaining quantity.
func (s *ProductDetailsService) ReduceStock(productID uint) (int, error) {
	var quantity int
	result := s.db.Raw(`
		UPDATE product_details
		SET quantity = quantity - 1
		WHERE product_id = ? AND quantity > 0
		RETURNING quantity
	`, productID).Scan(&quantity)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		return quantity, nil
	}

	// Zero rows affected: either the row is missing or it is out of stock.
	var count int64
	if err := s.db.Model(&models.ProductDetails{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrDetailsNotFound
	}
	return 0, ErrOutOfStock
}

func toJSONList(values []string, fallback []string) datatypes.JSON {
	if values == nil {
		values = fallback
	}
	b, err := json.Marshal(values)
	if err != nil {
		b = []byte("[]")
	}
	return datatypes.JSON(b)
}
