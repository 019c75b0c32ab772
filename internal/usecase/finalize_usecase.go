package usecase

import (
	"context"
	"errors"

	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/usecase/interfaces"
)

var (
	ErrOrderEmpty       = errors.New("order has no parts")
	ErrQueueNotEmpty    = errors.New("pending scans not yet synced")
	ErrInvalidEntryID   = errors.New("invalid finalized entry id")
	ErrEntryNotFound    = errors.New("finalized entry not found")
	ErrStoreUnreachable = errors.New("record store unreachable")
)

// IFinalizeUseCase freezes a draft order into its immutable snapshot and
// reads finalized history back.

type IFinalizeUseCase interface {
	Finalize(ctx context.Context, orderID string) (entities.FinalizedEntry, error)
	ListEntries(ctx context.Context) ([]entities.FinalizedEntry, error)
	GetEntry(ctx context.Context, entryID string) (entities.FinalizedEntry, error)
	ListLines(ctx context.Context, entryID string) ([]entities.FinalizedLine, error)
}

type FinalizeUseCase struct {
	store interfaces.IRecordStore
	queue interfaces.IScanQueue
	scans *ScanUseCase
}

var _ IFinalizeUseCase = (*FinalizeUseCase)(nil)

func NewFinalizeUseCase(store interfaces.IRecordStore, queue interfaces.IScanQueue, scans *ScanUseCase) *FinalizeUseCase {
	return &FinalizeUseCase{store: store, queue: queue, scans: scans}
}

// Finalize checks the preconditions (draft, at least one part, no pending
// offline scans) and hands the actual flip to the store's transactional
// FinalizeOrder. Finalizing over an unsynced queue would silently drop scans
// from the snapshot, so a non-empty queue is a hard rejection.
//
// The store transaction re-verifies the draft condition, so a concurrent
// finalize loses cleanly instead of writing a second snapshot.
func (u *FinalizeUseCase) Finalize(ctx context.Context, orderID string) (entities.FinalizedEntry, error) {
	if orderID == "" {
		return entities.FinalizedEntry{}, ErrInvalidOrderID
	}

	// Serialize with live commits and drains for this order.
	s := u.scans.session(orderID)
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := u.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if interfaces.IsTransient(err) {
			return entities.FinalizedEntry{}, ErrStoreUnreachable
		}
		return entities.FinalizedEntry{}, err
	}
	if order.ID == "" {
		return entities.FinalizedEntry{}, ErrOrderNotFound
	}
	if !order.IsDraft() {
		return entities.FinalizedEntry{}, ErrOrderFinalized
	}

	pending, err := u.queue.CountByOrder(ctx, orderID)
	if err != nil {
		return entities.FinalizedEntry{}, err
	}
	if pending > 0 {
		return entities.FinalizedEntry{}, ErrQueueNotEmpty
	}

	parts, err := u.store.ListParts(ctx, orderID)
	if err != nil {
		return entities.FinalizedEntry{}, err
	}
	if len(parts) == 0 {
		return entities.FinalizedEntry{}, ErrOrderEmpty
	}

	entry, err := u.store.FinalizeOrder(ctx, order, parts)
	if err != nil {
		if interfaces.IsTransient(err) {
			return entities.FinalizedEntry{}, ErrStoreUnreachable
		}
		return entities.FinalizedEntry{}, err
	}
	if entry.ID == "" {
		// Lost the race: someone finalized between our read and the
		// transaction's condition check.
		return entities.FinalizedEntry{}, ErrOrderFinalized
	}
	return entry, nil
}

func (u *FinalizeUseCase) ListEntries(ctx context.Context) ([]entities.FinalizedEntry, error) {
	return u.store.ListFinalizedEntries(ctx)
}

func (u *FinalizeUseCase) GetEntry(ctx context.Context, entryID string) (entities.FinalizedEntry, error) {
	if entryID == "" {
		return entities.FinalizedEntry{}, ErrInvalidEntryID
	}
	e, err := u.store.GetFinalizedEntry(ctx, entryID)
	if err != nil {
		return entities.FinalizedEntry{}, err
	}
	if e.ID == "" {
		return entities.FinalizedEntry{}, ErrEntryNotFound
	}
	return e, nil
}

func (u *FinalizeUseCase) ListLines(ctx context.Context, entryID string) ([]entities.FinalizedLine, error) {
	if entryID == "" {
		return nil, ErrInvalidEntryID
	}
	return u.store.ListFinalizedLines(ctx, entryID)
}
