package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetStats aggregates orders inside the requested window and compares them
// against the immediately preceding window of equal length.
func (s *DashboardService) GetStats(rangeKey string) (*dto.DashboardStats, error) {
	now := time.Now().UTC()
	from := windowStart(rangeKey, now)
	prevFrom := previousWindowStart(from, now)

	stats := &dto.DashboardStats{
		RecentOrders: []dto.RecentOrder{},
		TopProducts:  []dto.TopProduct{},
		SalesData:    []dto.SalesPoint{},
	}

	if err := s.db.Model(&models.Order{}).Where("created_at >= ?", from).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var revenue float64
	if err := s.db.Model(&models.Order{}).Where("created_at >= ?", from).
		Select("COALESCE(SUM(total), 0)").Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.TotalRevenue = int64(math.Round(revenue))

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Order{}).Where("created_at >= ?", from).
		Select("COUNT(DISTINCT email)").Scan(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}

	type topProductRow struct {
		ID         uint
		Name       string
		Image      string
		SalesCount int64
		Revenue    float64
	}
	topRows := []topProductRow{}
	err := s.db.Raw(`
		SELECT p.id, p.name, p.image,
			COUNT(oi.product_id) AS sales_count,
			SUM(oi.quantity * p.price) AS revenue
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at >= ?
		GROUP BY p.id, p.name, p.image
		ORDER BY revenue DESC
		LIMIT 4
	`, from).Scan(&topRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range topRows {
		stats.TopProducts = append(stats.TopProducts, dto.TopProduct{
			ID:         row.ID,
			Name:       row.Name,
			SalesCount: row.SalesCount,
			Revenue:    row.Revenue,
			Image:      imageOrFallback(row.Image, row.Name),
		})
	}

	salesRows := []dto.SalesPoint{}
	err = s.db.Raw(`
		SELECT TO_CHAR(DATE_TRUNC('day', o.created_at), 'YYYY-MM-DD') AS date,
			SUM(o.total) AS sales
		FROM orders o
		WHERE o.created_at >= ?
		GROUP BY DATE_TRUNC('day', o.created_at)
		ORDER BY date
	`, from).Scan(&salesRows).Error
	if err != nil {
		return nil, err
	}
	stats.SalesData = salesRows

	type recentOrderRow struct {
		OrderID      uint
		UserName     string
		Total        float64
		Status       string
		CreatedAt    time.Time
		ProductName  string
		ProductImage string
	}
	recentRows := []recentOrderRow{}
	err = s.db.Raw(`
		SELECT
			o.id AS order_id,
			COALESCE(NULLIF(o.name, ''), 'Guest') AS user_name,
			o.total,
			o.status,
			o.created_at,
			p.name AS product_name,
			p.image AS product_image
		FROM orders o
		JOIN order_items oi ON o.id = oi.order_id
		JOIN products p ON oi.product_id = p.id
		WHERE o.created_at >= ?
		ORDER BY o.created_at DESC
		LIMIT 5
	`, from).Scan(&recentRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range recentRows {
		stats.RecentOrders = append(stats.RecentOrders, dto.RecentOrder{
			OrderID:      row.OrderID,
			UserName:     row.UserName,
			Total:        row.Total,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
			ProductName:  row.ProductName,
			ProductImage: imageOrFallback(row.ProductImage, row.ProductName),
		})
	}

	// Previous window of equal length, for the growth percentages.
	var prevOrders, prevCustomers int64
	var prevRevenue float64
	if err := s.db.Model(&models.Order{}).Where("created_at BETWEEN ? AND ?", prevFrom, from).Count(&prevOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Where("created_at BETWEEN ? AND ?", prevFrom, from).
		Select("COALESCE(SUM(total), 0)").Scan(&prevRevenue).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Where("created_at BETWEEN ? AND ?", prevFrom, from).
		Select("COUNT(DISTINCT email)").Scan(&prevCustomers).Error; err != nil {
		return nil, err
	}

	stats.OrderGrowth = calculateGrowth(float64(prevOrders), float64(stats.TotalOrders))
	stats.RevenueGrowth = calculateGrowth(prevRevenue, revenue)
	stats.CustomerGrowth = calculateGrowth(float64(prevCustomers), float64(stats.TotalCustomers))
	stats.ProductGrowth = 100 // static placeholder, matches the dashboard UI

	return stats, nil
}

// windowStart maps a range key to its inclusive lower bound. Unrecognized
// keys (including "all") fall back to an effectively unbounded window.
func windowStart(rangeKey string, now time.Time) time.Time {
	switch rangeKey {
	case "7d":
		return now.AddDate(0, 0, -7)
	case "30d":
		return now.AddDate(0, 0, -30)
	case "90d":
		return now.AddDate(0, 0, -90)
	default:
		return time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

// previousWindowStart mirrors the current window backwards: the preceding
// interval has the same length and ends where the current one starts.
func previousWindowStart(from, now time.Time) time.Time {
	return from.Add(-now.Sub(from))
}

func calculateGrowth(prev, curr float64) int {
	if prev == 0 && curr > 0 {
		return 100
	}
	if prev == 0 && curr == 0 {
		return 0
	}
	return int(math.Round((curr - prev) / prev * 100))
}

var nonWord = regexp.MustCompile(`[^\w_]`)

// imageOrFallback substitutes a name-derived webp filename when the stored
// image reference is blank.
func imageOrFallback(image, name string) string {
	if strings.TrimSpace(image) != "" {
		return image
	}
	slug := strings.ToLower(name)
	slug = strings.Join(strings.Fields(slug), "_")
	slug = nonWord.ReplaceAllString(slug, "")
	return "/" + slug + ".webp"
}
