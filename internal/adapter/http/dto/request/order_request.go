package request

// CreateOrderRequest opens a new draft repair order.
type CreateOrderRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
}
