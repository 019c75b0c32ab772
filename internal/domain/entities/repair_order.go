package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the lifecycle of a repair order.
//
// Domain notes:
//   - An order is mutable only while in draft.
//   - Finalization is one-way; a finalized order never returns to draft,
//     and its parts can no longer be changed.

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusFinalized OrderStatus = "finalized"
)

// RepairOrder is the unit of work persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
//
// OrderNumber is unique across the shop and stored upper-cased; all lookups
// normalize through NormalizeOrderNumber first.
type RepairOrder struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	FinalizedAt *time.Time  `json:"finalized_at,omitempty"`
}

func (o RepairOrder) IsDraft() bool {
	return o.Status == OrderStatusDraft
}

// NormalizeOrderNumber trims and upper-cases a human-entered order number so
// "r100" and "R100 " address the same order.
func NormalizeOrderNumber(n string) string {
	return strings.ToUpper(strings.TrimSpace(n))
}
