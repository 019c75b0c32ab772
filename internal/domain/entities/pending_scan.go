package entities

import "time"

// PendingScan is a barcode captured while the record store was unreachable,
// held in the local queue until a drain commits it. FIFO per order; the
// monotonic ID doubles as the ordering key. The same barcode may appear more
// than once for one order, each occurrence is one increment.
type PendingScan struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	Barcode   string    `json:"barcode"`
	Retries   int       `json:"retries"`
	CreatedAt time.Time `json:"created_at"`
}
