package services

import (
	"fmt"
	"strings"

	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// SyncFromWebhook inserts the provider's user if absent. Existing rows are
// never updated: the provider remains the source of truth for profile edits.
func (s *UserService) SyncFromWebhook(payload *dto.IdentityWebhookUser) error {
	if payload.ID == "" {
		return fmt.Errorf("webhook user id is empty")
	}

	name := strings.TrimSpace(payload.FirstName + " " + payload.LastName)
	user := models.User{
		ID:    payload.ID,
		Email: payload.PrimaryEmail(),
		Name:  name,
	}

	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

func (s *UserService) List() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
