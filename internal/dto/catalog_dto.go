package dto

import (
	"time"

	"github.com/softcorner-studio/storefront-api/internal/models"
)

type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id"`
	Position int    `json:"position"`
}

// CategoryRow is a category joined with its navigation node for the admin
// category table: nav title, slug, position and the parent nav title.
type CategoryRow struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	NavItemID      *uint   `json:"nav_item_id"`
	Category       *string `json:"category"`
	NavSlug        *string `json:"nav_slug"`
	Position       *int    `json:"position"`
	ParentCategory *string `json:"parent_category"`
}

type CreateCategoryResponse struct {
	Category   models.Category       `json:"category"`
	Navigation models.NavigationItem `json:"navigation"`
}

type CreateNavigationRequest struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	ParentID   *uint  `json:"parent_id"`
	Position   int    `json:"position"`
	IsCategory bool   `json:"is_category"`
}

type UpdateNavigationRequest struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	ParentID   *uint  `json:"parent_id"`
	Position   int    `json:"position"`
	IsCategory bool   `json:"is_category"`
}

type DeleteNavigationRequest struct {
	ID uint `json:"id"`
}

// SyncReport lists the two kinds of category/navigation drift.
type SyncReport struct {
	CategoriesNeedingNav []models.Category       `json:"categories_needing_nav"`
	NavNeedingCategories []models.NavigationItem `json:"nav_needing_categories"`
}

type CreateProductRequest struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Image         string   `json:"image"`
	CategoryID    *uint    `json:"category_id"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	CategoryID  *uint   `json:"category_id"`
}

// ProductRow is a product joined with its category chain and rating for
// storefront listings.
type ProductRow struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	OriginalPrice      *float64  `json:"original_price"`
	Image              string    `json:"image"`
	CategoryID         *uint     `json:"category_id"`
	CategoryName       *string   `json:"category_name"`
	CategorySlug       *string   `json:"category_slug"`
	ParentCategorySlug *string   `json:"parent_category_slug"`
	Rating             *float64  `json:"rating"`
	IsOnSale           bool      `json:"is_on_sale"`
	SalePercentage     int       `json:"sale_percentage"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateProductResponse struct {
	models.Product
	CategorySlug string `json:"category_slug"`
}
