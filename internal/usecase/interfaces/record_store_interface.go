package interfaces

import (
	"context"

	"mecanica_parts/internal/domain/entities"
)

//go:generate mockgen -source=record_store_interface.go -destination=mocks/record_store_mock.go -package=mock_interfaces

// IRecordStore abstracts the shared record store the workstation talks to
// over the network. Implementations must wrap connectivity and timeout
// failures in *TransientError so the commit boundary can queue instead of
// fail.
//
// Lookup methods follow the zero-value convention: a missing entity is
// (zero, nil), not an error.
type IRecordStore interface {
	CreateOrder(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error)
	GetOrderByID(ctx context.Context, id string) (entities.RepairOrder, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.RepairOrder, error)
	SearchOrders(ctx context.Context, query string, limit int) ([]entities.RepairOrder, error)
	DeleteOrder(ctx context.Context, orderID string) error

	ListParts(ctx context.Context, orderID string) ([]entities.ScannedPart, error)
	// UpsertPartIncrement atomically creates the (orderID, barcode) part with
	// quantity 1 or increments the existing row by 1.
	UpsertPartIncrement(ctx context.Context, orderID, barcode string) (entities.ScannedPart, error)
	SetPartQuantity(ctx context.Context, orderID, barcode string, qty int) (entities.ScannedPart, error)
	DeletePart(ctx context.Context, orderID, barcode string) error

	// FinalizeOrder flips the order to finalized and writes the snapshot
	// header plus one line per part as a single transaction. A zero-value
	// result with nil error means the draft condition failed (already
	// finalized by a concurrent caller).
	FinalizeOrder(ctx context.Context, order entities.RepairOrder, parts []entities.ScannedPart) (entities.FinalizedEntry, error)
	ListFinalizedEntries(ctx context.Context) ([]entities.FinalizedEntry, error)
	GetFinalizedEntry(ctx context.Context, entryID string) (entities.FinalizedEntry, error)
	ListFinalizedLines(ctx context.Context, entryID string) ([]entities.FinalizedLine, error)
}
