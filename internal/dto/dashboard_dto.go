package dto

import "time"

type DashboardStats struct {
	TotalOrders    int64 `json:"totalOrders"`
	TotalRevenue   int64 `json:"totalRevenue"`
	TotalProducts  int64 `json:"totalProducts"`
	TotalCustomers int64 `json:"totalCustomers"`

	OrderGrowth    int `json:"orderGrowth"`
	RevenueGrowth  int `json:"revenueGrowth"`
	ProductGrowth  int `json:"productGrowth"`
	CustomerGrowth int `json:"customerGrowth"`

	RecentOrders []RecentOrder `json:"recentOrders"`
	TopProducts  []TopProduct  `json:"topProducts"`
	SalesData    []SalesPoint  `json:"salesData"`
}

type RecentOrder struct {
	OrderID      uint      `json:"orderId"`
	UserName     string    `json:"userName"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductName  string    `json:"productName"`
	ProductImage string    `json:"productImage"`
}

type TopProduct struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	SalesCount int64   `json:"salesCount"`
	Revenue    float64 `json:"revenue"`
	Image      string  `json:"image"`
}

type SalesPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}
