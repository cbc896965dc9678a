package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCalculateGrowth(t *testing.T) {
	cases := []struct {
		prev, curr float64
		want       int
	}{
		{0, 0, 0},
		{0, 5, 100},
		{100, 150, 50},
		{100, 50, -50},
		{3, 4, 33},
		{200, 200, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, calculateGrowth(tc.prev, tc.curr),
			"growth(%v, %v)", tc.prev, tc.curr)
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	require.Equal(t, now.AddDate(0, 0, -7), windowStart("7d", now))
	require.Equal(t, now.AddDate(0, 0, -30), windowStart("30d", now))
	require.Equal(t, now.AddDate(0, 0, -90), windowStart("90d", now))

	// "all" and anything unrecognized use the unbounded floor.
	floor := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, floor, windowStart("all", now))
	require.Equal(t, floor, windowStart("nonsense", now))
}

func TestPreviousWindowStart_MirrorsCurrentWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	from := now.AddDate(0, 0, -30)

	prev := previousWindowStart(from, now)
	require.Equal(t, now.Sub(from), from.Sub(prev))
}

func TestGetStats_RoundsRevenue(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDashboardService(db)

	topColumns := []string{"id", "name", "image", "sales_count", "revenue"}
	recentColumns := []string{"order_id", "user_name", "total", "status", "created_at", "product_name", "product_image"}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE created_at >= \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM "orders" WHERE created_at >= \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(999.99))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT email\) FROM "orders" WHERE created_at >= \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`(?s)SELECT p\.id, p\.name, p\.image.+GROUP BY p\.id`).
		WillReturnRows(sqlmock.NewRows(topColumns))
	mock.ExpectQuery(`(?s)TO_CHAR.+FROM orders o`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "sales"}))
	mock.ExpectQuery(`(?s)COALESCE\(NULLIF\(o\.name, ''\), 'Guest'\)`).
		WillReturnRows(sqlmock.NewRows(recentColumns))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE created_at BETWEEN \$1 AND \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM "orders" WHERE created_at BETWEEN \$1 AND \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(400.0))
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT email\) FROM "orders" WHERE created_at BETWEEN \$1 AND \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	stats, err := svc.GetStats("30d")
	require.NoError(t, err)

	// 999.99 rounds up instead of truncating to 999.
	require.Equal(t, int64(1000), stats.TotalRevenue)
	require.Equal(t, int64(3), stats.TotalOrders)
	require.Equal(t, 200, stats.OrderGrowth)
	require.Equal(t, 150, stats.RevenueGrowth)
	require.Equal(t, 100, stats.CustomerGrowth)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImageOrFallback(t *testing.T) {
	require.Equal(t, "/shirts/oxford.webp", imageOrFallback("/shirts/oxford.webp", "Oxford Shirt"))
	require.Equal(t, "/classic_tee.webp", imageOrFallback("", "Classic Tee"))
	require.Equal(t, "/classic_tee.webp", imageOrFallback("   ", "Classic Tee"))
	require.Equal(t, "/kids_hoodie.webp", imageOrFallback("", "Kids' Hoodie!"))
}
