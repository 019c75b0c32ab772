package response

import (
	"mecanica_parts/internal/domain/entities"
	"time"
)

type OrderResponse struct {
	ID          string     `json:"id"`
	OrderNumber string     `json:"order_number"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}

func FromOrder(o entities.RepairOrder) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		FinalizedAt: o.FinalizedAt,
	}
}

func FromOrders(orders []entities.RepairOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
