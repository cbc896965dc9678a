package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrProductFieldsRequired   = errors.New("name, price, image and category are required")
	ErrInvalidCategory         = errors.New("invalid category")
	ErrProductUpdateIncomplete = errors.New("name, price and image are required")
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

const productSelect = `
	SELECT
		p.id,
		p.name,
		p.slug,
		p.description,
		p.price,
		p.original_price,
		p.image,
		p.category_id,
		c.name AS category_name,
		c.slug_join AS category_slug,
		parent_nav.slug AS parent_category_slug,
		pd.rating,
		p.created_at
	FROM products p
	LEFT JOIN (
		SELECT cat.id, cat.name, nav.slug AS slug_join, nav.parent_id
		FROM categories cat
		LEFT JOIN navigation nav ON cat.nav_item_id = nav.id
	) c ON p.category_id = c.id
	LEFT JOIN navigation parent_nav ON c.parent_id = parent_nav.id
	LEFT JOIN product_details pd ON pd.product_id = p.id
`

// List returns the full catalog joined with category slugs and ratings,
// newest first, with the sale fields computed per row.
func (s *ProductService) List() ([]dto.ProductRow, error) {
	rows := []dto.ProductRow{}
	if err := s.db.Raw(productSelect + " ORDER BY p.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for i := range rows {
		applySaleFields(&rows[i])
	}
	return rows, nil
}

func (s *ProductService) Get(id uint) (*dto.ProductRow, error) {
	var row dto.ProductRow
	result := s.db.Raw(productSelect+" WHERE p.id = ?", id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}
	applySaleFields(&row)
	return &row, nil
}

func (s *ProductService) Create(req *dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if req.Name == "" || req.Price == 0 || req.Image == "" || req.CategoryID == nil {
		return nil, ErrProductFieldsRequired
	}

	var cat struct {
		ID   uint
		Slug *string
	}
	result := s.db.Raw(`
		SELECT c.id, n.slug FROM categories c
		LEFT JOIN navigation n ON c.nav_item_id = n.id
		WHERE c.id = ?
	`, *req.CategoryID).Scan(&cat)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidCategory
	}
	categorySlug := ""
	if cat.Slug != nil {
		categorySlug = *cat.Slug
	}

	slug := req.Slug
	if slug == "" {
		slug = GenerateProductSlug(req.Name, time.Now())
	}

	// original_price only survives when it is a real markdown.
	var originalPrice *float64
	if req.OriginalPrice != nil && *req.OriginalPrice > req.Price {
		originalPrice = req.OriginalPrice
	}

	product := models.Product{
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: originalPrice,
		Image:         req.Image,
		CategoryID:    req.CategoryID,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &dto.CreateProductResponse{Product: product, CategorySlug: categorySlug}, nil
}

func (s *ProductService) Update(id uint, req *dto.UpdateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Price == 0 || req.Image == "" {
		return nil, ErrProductUpdateIncomplete
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"slug":        req.Slug,
		"description": req.Description,
		"price":       req.Price,
		"image":       req.Image,
		"category_id": req.CategoryID,
	}
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// GenerateProductSlug derives a unique-enough slug: the slugified name capped
// at 50 chars plus the last six digits of the unix-millisecond clock.
func GenerateProductSlug(name string, now time.Time) string {
	base := Slugify(name)
	if len(base) > 50 {
		base = base[:50]
	}
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return base + "-" + ms[len(ms)-6:]
}

func applySaleFields(row *dto.ProductRow) {
	if row.OriginalPrice == nil || *row.OriginalPrice <= row.Price {
		return
	}
	row.IsOnSale = true
	row.SalePercentage = int(math.Round((*row.OriginalPrice - row.Price) / *row.OriginalPrice * 100))
}
