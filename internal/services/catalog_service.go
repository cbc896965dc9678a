package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrTitleSlugRequired    = errors.New("title and slug are required")
	ErrParentNotFound       = errors.New("parent navigation item not found")
	ErrNavigationNotFound   = errors.New("navigation item not found")
)

// HasChildrenError is returned when a navigation node with children is
// deleted. Children carries the blocking ids so the client can list them.
type HasChildrenError struct {
	Children []uint
}

func (e *HasChildrenError) Error() string {
	return "cannot delete item with children, delete or reassign children first"
}

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

// Slugify lowercases, turns whitespace runs into hyphens and strips anything
// outside [a-z0-9-].
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	return slugStrip.ReplaceAllString(s, "")
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListCategories returns categories joined with their navigation node,
// ordered the way the storefront menu renders them.
func (s *CatalogService) ListCategories() ([]dto.CategoryRow, error) {
	rows := []dto.CategoryRow{}
	err := s.db.Raw(`
		SELECT
			c.id,
			c.name,
			c.nav_item_id,
			n.title AS category,
			n.slug AS nav_slug,
			n.position,
			parent.title AS parent_category
		FROM categories c
		LEFT JOIN navigation n ON c.nav_item_id = n.id
		LEFT JOIN navigation parent ON n.parent_id = parent.id
		ORDER BY COALESCE(n.parent_id, 0), n.position ASC, c.name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return rows, nil
}

// CreateCategory inserts the navigation node and the category row as one
// transaction so a failed second write cannot leave an orphaned nav entry.
func (s *CatalogService) CreateCategory(req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	nav := models.NavigationItem{
		Title:      name,
		Slug:       Slugify(name),
		ParentID:   req.ParentID,
		Position:   req.Position,
		IsCategory: true,
	}
	category := models.Category{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&nav).Error; err != nil {
			return err
		}
		category.NavItemID = &nav.ID
		return tx.Create(&category).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &dto.CreateCategoryResponse{Category: category, Navigation: nav}, nil
}

func (s *CatalogService) ListNavigation() ([]models.NavigationItem, error) {
	items := []models.NavigationItem{}
	err := s.db.Order("COALESCE(parent_id, 0), position ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list navigation: %w", err)
	}
	return items, nil
}

func (s *CatalogService) CreateNavigationItem(req *dto.CreateNavigationRequest) (*models.NavigationItem, error) {
	if req.Title == "" || req.Slug == "" {
		return nil, ErrTitleSlugRequired
	}

	if req.ParentID != nil {
		var parent models.NavigationItem
		if err := s.db.First(&parent, *req.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
	}

	item := models.NavigationItem{
		Title:      req.Title,
		Slug:       req.Slug,
		ParentID:   req.ParentID,
		Position:   req.Position,
		IsCategory: req.IsCategory,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if item.IsCategory {
			return tx.Create(&models.Category{Name: item.Title, NavItemID: &item.ID}).Error
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create navigation item: %w", err)
	}
	return &item, nil
}

func (s *CatalogService) UpdateNavigationItem(req *dto.UpdateNavigationRequest) error {
	if req.ID == 0 || req.Title == "" || req.Slug == "" {
		return ErrTitleSlugRequired
	}

	var existing models.NavigationItem
	if err := s.db.First(&existing, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNavigationNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":       req.Title,
			"slug":        req.Slug,
			"parent_id":   req.ParentID,
			"position":    req.Position,
			"is_category": req.IsCategory,
		}
		if err := tx.Model(&models.NavigationItem{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
			return err
		}
		if req.IsCategory {
			return tx.Model(&models.Category{}).Where("nav_item_id = ?", req.ID).
				Update("name", req.Title).Error
		}
		return nil
	})
}

// DeleteNavigationItem refuses to cascade: nodes with children return
// *HasChildrenError and nothing is mutated.
func (s *CatalogService) DeleteNavigationItem(id uint) error {
	var existing models.NavigationItem
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNavigationNotFound
		}
		return err
	}

	var childIDs []uint
	if err := s.db.Model(&models.NavigationItem{}).Where("parent_id = ?", id).
		Pluck("id", &childIDs).Error; err != nil {
		return err
	}
	if len(childIDs) > 0 {
		return &HasChildrenError{Children: childIDs}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("nav_item_id = ?", id).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.NavigationItem{}, id).Error
	})
}

// SyncReport is the read-only drift diagnostic between categories and
// navigation.
func (s *CatalogService) SyncReport() (*dto.SyncReport, error) {
	report := &dto.SyncReport{
		CategoriesNeedingNav: []models.Category{},
		NavNeedingCategories: []models.NavigationItem{},
	}

	if err := s.db.Where("nav_item_id IS NULL").Find(&report.CategoriesNeedingNav).Error; err != nil {
		return nil, err
	}
	err := s.db.Where("is_category = true AND id NOT IN (?)",
		s.db.Model(&models.Category{}).Select("nav_item_id").Where("nav_item_id IS NOT NULL"),
	).Find(&report.NavNeedingCategories).Error
	if err != nil {
		return nil, err
	}
	return report, nil
}

// SyncRepair creates navigation rows for orphaned categories and links them
// back by matching on name. Best effort: two categories sharing a name can
// end up linked to the same navigation row.
func (s *CatalogService) SyncRepair() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			INSERT INTO navigation (title, slug, position, is_category)
			SELECT name, name, 0, true
			FROM categories
			WHERE nav_item_id IS NULL
		`).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE categories c
			SET nav_item_id = n.id
			FROM navigation n
			WHERE n.title = c.name
			  AND n.is_category = true
			  AND c.nav_item_id IS NULL
		`).Error
	})
}
