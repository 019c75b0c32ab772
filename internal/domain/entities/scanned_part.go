package entities

import "time"

// ScannedPart is one barcode line on a draft repair order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: barcode
//
// The (order_id, barcode) pair is the part's identity: a repeat scan of the
// same barcode increments Quantity instead of creating a second row.
type ScannedPart struct {
	OrderID   string    `json:"order_id"`
	Barcode   string    `json:"barcode"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
