package dto

import "time"

type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderRequest carries the cart and contact details. The shopper's
// user id never comes from the body; it is taken from the verified session.
type CreateOrderRequest struct {
	Items   []OrderItemInput `json:"items"`
	Total   float64          `json:"total"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Phone   string           `json:"phone"`
	Address string           `json:"address"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"orderId"`
}

type UpdateOrderStatusRequest struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

type DeleteOrderRequest struct {
	OrderID uint `json:"orderId"`
}

// EnrichedOrderItem carries the live product row alongside the ordered
// quantity. Price reflects the catalog at read time, not at order time.
type EnrichedOrderItem struct {
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

type EnrichedOrder struct {
	ID          uint                `json:"id"`
	Total       float64             `json:"total"`
	CreatedAt   time.Time           `json:"createdAt"`
	UserName    string              `json:"userName"`
	UserEmail   string              `json:"userEmail"`
	UserPhone   string              `json:"userPhone"`
	UserAddress string              `json:"userAddress"`
	ItemCount   int                 `json:"itemCount"`
	Status      string              `json:"status"`
	Items       []EnrichedOrderItem `json:"items"`
}
