package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrOrderFieldsRequired = errors.New("missing required fields")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatus       = errors.New("invalid order status")
)

var validStatuses = map[string]bool{
	models.StatusProcessing: true,
	models.StatusShipped:    true,
	models.StatusDelivered:  true,
	models.StatusCancelled:  true,
}

// ValidStatus reports whether s is one of the recognized order states.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// IdentityLookup resolves a provider user id to an email address. Used to
// backfill order listings when the order's own email field is blank.
type IdentityLookup interface {
	UserEmail(ctx context.Context, userID string) (string, error)
}

type OrderService struct {
	db       *gorm.DB
	identity IdentityLookup
}

func NewOrderService(db *gorm.DB, identity IdentityLookup) *OrderService {
	return &OrderService{db: db, identity: identity}
}

// Create persists the order and every item in one transaction; a failed item
// insert rolls back the order row.
func (s *OrderService) Create(userID string, req *dto.CreateOrderRequest) (uint, error) {
	if len(req.Items) == 0 || req.Total == 0 || req.Name == "" || req.Email == "" ||
		req.Phone == "" || req.Address == "" {
		return 0, ErrOrderFieldsRequired
	}

	order := models.Order{
		UserID:  userID,
		Total:   req.Total,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  models.StatusProcessing,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		items := make([]models.OrderItem, len(req.Items))
		for i, item := range req.Items {
			items[i] = models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	return order.ID, nil
}

// List returns every order enriched with item details and a resolved user
// email. Prices come from the current product rows, not an order-time
// snapshot. Identity lookups are deduplicated per user id.
func (s *OrderService) List(ctx context.Context) ([]dto.EnrichedOrder, error) {
	type orderRow struct {
		ID        uint
		Total     float64
		CreatedAt time.Time
		Name      string
		Email     string
		Phone     string
		Address   string
		UserID    string
		Status    string
		ItemCount int
	}

	rows := []orderRow{}
	err := s.db.Raw(`
		SELECT
			o.id, o.total, o.created_at, o.name, o.email, o.phone, o.address,
			o.user_id, o.status, COUNT(oi.id) AS item_count
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		GROUP BY o.id
		ORDER BY o.id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	type itemRow struct {
		OrderID      uint
		ProductName  string
		ProductImage string
		Price        float64
		Quantity     int
	}
	itemRows := []itemRow{}
	err = s.db.Raw(`
		SELECT
			oi.order_id,
			p.name AS product_name,
			p.image AS product_image,
			p.price,
			oi.quantity
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
	`).Scan(&itemRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	itemsByOrder := make(map[uint][]dto.EnrichedOrderItem)
	for _, item := range itemRows {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], dto.EnrichedOrderItem{
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Price:        item.Price,
			Quantity:     item.Quantity,
		})
	}

	// One identity-provider call per distinct user id without a stored email.
	emailByUser := make(map[string]string)
	for _, row := range rows {
		if row.Email != "" || row.UserID == "" {
			continue
		}
		if _, seen := emailByUser[row.UserID]; seen {
			continue
		}
		email, err := s.identity.UserEmail(ctx, row.UserID)
		if err != nil {
			emailByUser[row.UserID] = "Unknown"
			continue
		}
		emailByUser[row.UserID] = email
	}

	enriched := make([]dto.EnrichedOrder, len(rows))
	for i, row := range rows {
		userName := row.Name
		if userName == "" {
			userName = "Unknown"
		}
		userEmail := row.Email
		if userEmail == "" {
			if resolved, ok := emailByUser[row.UserID]; ok {
				userEmail = resolved
			} else {
				userEmail = "Unknown"
			}
		}
		userPhone := row.Phone
		if userPhone == "" {
			userPhone = "N/A"
		}
		userAddress := row.Address
		if userAddress == "" {
			userAddress = "N/A"
		}
		status := row.Status
		if status == "" {
			status = models.StatusProcessing
		}
		items := itemsByOrder[row.ID]
		if items == nil {
			items = []dto.EnrichedOrderItem{}
		}

		enriched[i] = dto.EnrichedOrder{
			ID:          row.ID,
			Total:       row.Total,
			CreatedAt:   row.CreatedAt,
			UserName:    userName,
			UserEmail:   userEmail,
			UserPhone:   userPhone,
			UserAddress: userAddress,
			ItemCount:   row.ItemCount,
			Status:      status,
			Items:       items,
		}
	}
	return enriched, nil
}

func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	if orderID == 0 || status == "" {
		return ErrOrderFieldsRequired
	}
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}

	result := s.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Delete removes the order and its items. When the table is left empty the
// id sequence restarts at 1, inside the same transaction so a concurrent
// insert cannot interleave between the count and the reset.
func (s *OrderService) Delete(orderID uint) error {
	if orderID == 0 {
		return ErrOrderFieldsRequired
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, orderID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotFound
		}

		var remaining int64
		if err := tx.Model(&models.Order{}).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Exec("ALTER SEQUENCE orders_id_seq RESTART WITH 1").Error
		}
		return nil
	})
}
