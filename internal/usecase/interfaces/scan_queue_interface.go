package interfaces

import (
	"context"

	"mecanica_parts/internal/domain/entities"
)

//go:generate mockgen -source=scan_queue_interface.go -destination=mocks/scan_queue_mock.go -package=mock_interfaces

// IScanQueue is the local durable queue of scans that could not reach the
// record store. Entries are FIFO per order and survive process restarts.
type IScanQueue interface {
	Append(ctx context.Context, orderID, barcode string) (entities.PendingScan, error)
	// List returns the pending scans for one order in capture order.
	List(ctx context.Context, orderID string) ([]entities.PendingScan, error)
	// ListOrderIDs returns the distinct orders that currently have pending
	// scans.
	ListOrderIDs(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, id int64) error
	// MarkRetry bumps the retry counter of an entry that failed a drain
	// attempt and stays queued.
	MarkRetry(ctx context.Context, id int64) error
	CountByOrder(ctx context.Context, orderID string) (int, error)
	// PurgeOrder drops every pending scan of one order (cascade on order
	// deletion).
	PurgeOrder(ctx context.Context, orderID string) error
}
