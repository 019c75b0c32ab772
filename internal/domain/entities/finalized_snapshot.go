package entities

import "time"

// FinalizedEntry is the immutable header written when an order is finalized.
// It is a copy, not a reference: later changes to live parts (which cannot
// happen post-finalization anyway) can never alter it. This is the billing
// artifact.
//
// Storage model (DynamoDB):
//   - finalized_entries PK: id
//   - finalized_lines   PK: entry_id, SK: barcode
type FinalizedEntry struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	FinalizedAt time.Time `json:"finalized_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// FinalizedLine is one (barcode, quantity) pair as of the finalization
// instant.
type FinalizedLine struct {
	EntryID  string `json:"entry_id"`
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}
