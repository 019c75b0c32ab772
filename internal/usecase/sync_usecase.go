package usecase

import (
	"context"
	"log/slog"

	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/infrastructure/metrics"
	"mecanica_parts/internal/usecase/interfaces"
)

// DrainResult reports one drain pass over a single order's queue.
type DrainResult struct {
	Committed   []entities.PendingScan
	StillFailed []entities.PendingScan
}

// ISyncUseCase reconciles the offline queue against the record store.
type ISyncUseCase interface {
	Drain(ctx context.Context, orderID string) (DrainResult, error)
	DrainAll(ctx context.Context) (map[string]DrainResult, error)
}

// SyncUseCase drains pending scans strictly sequentially per order. Commits
// are increments, so two queue entries for the same barcode must not run
// concurrently; the per-order lock inside ScanUseCase also keeps a drain
// from racing a live scan.
type SyncUseCase struct {
	queue interfaces.IScanQueue
	scans *ScanUseCase
	log   *slog.Logger
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(queue interfaces.IScanQueue, scans *ScanUseCase, log *slog.Logger) *SyncUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &SyncUseCase{queue: queue, scans: scans, log: log}
}

// Drain walks the order's queue in FIFO order. Only a Committed resolution
// removes an entry; Rejected and transient entries stay queued and do not
// abort the pass, so one stuck entry cannot block the rest.
func (u *SyncUseCase) Drain(ctx context.Context, orderID string) (DrainResult, error) {
	if orderID == "" {
		return DrainResult{}, ErrInvalidOrderID
	}

	entries, err := u.queue.List(ctx, orderID)
	if err != nil {
		return DrainResult{}, err
	}

	var res DrainResult
	for _, entry := range entries {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		cr, err := u.scans.CommitPending(ctx, orderID, entry.Barcode)
		if err != nil {
			// Unexpected failure: keep the entry, keep going.
			u.log.Error("drain commit failed", "order_id", orderID, "barcode", entry.Barcode, "err", err)
			_ = u.queue.MarkRetry(ctx, entry.ID)
			res.StillFailed = append(res.StillFailed, entry)
			metrics.DrainRetained.Inc()
			continue
		}

		switch cr.Status {
		case CommitCommitted:
			if err := u.queue.Remove(ctx, entry.ID); err != nil {
				return res, err
			}
			res.Committed = append(res.Committed, entry)
			metrics.DrainCommitted.Inc()
		default:
			// Rejected entries stay queued for manual resolution; transient
			// ones wait for the next pass.
			u.log.Info("pending scan not drained", "order_id", orderID, "barcode", entry.Barcode, "status", string(cr.Status), "reason", cr.Reason)
			_ = u.queue.MarkRetry(ctx, entry.ID)
			res.StillFailed = append(res.StillFailed, entry)
			metrics.DrainRetained.Inc()
		}
	}
	return res, nil
}

// DrainAll runs one drain pass for every order with pending scans. Orders
// are independent; entries within an order stay sequential.
func (u *SyncUseCase) DrainAll(ctx context.Context) (map[string]DrainResult, error) {
	orderIDs, err := u.queue.ListOrderIDs(ctx)
	if err != nil {
		return nil, err
	}

	results := make(map[string]DrainResult, len(orderIDs))
	for _, id := range orderIDs {
		r, err := u.Drain(ctx, id)
		if err != nil {
			return results, err
		}
		results[id] = r
	}
	return results, nil
}
