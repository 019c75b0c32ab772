package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/infrastructure/metrics"
	"mecanica_parts/internal/usecase/interfaces"
)

var (
	ErrInvalidBarcode  = errors.New("invalid barcode")
	ErrInvalidQuantity = errors.New("quantity must be >= 1")
	ErrPartNotFound    = errors.New("part not found")
)

// SessionState is the per-order scan session state.
type SessionState string

const (
	SessionIdle       SessionState = "idle"
	SessionScanning   SessionState = "scanning"
	SessionCommitting SessionState = "committing"
)

// CommitStatus is the resolution of one barcode commit attempt.

type CommitStatus string

const (
	CommitCommitted CommitStatus = "committed"
	CommitQueued    CommitStatus = "queued"
	CommitRejected  CommitStatus = "rejected"
)

type CommitResult struct {
	Status CommitStatus
	Reason string
	Part   entities.ScannedPart
}

// IScanUseCase is the commit path every barcode takes, whether it came from
// the decode pipeline or was typed in by hand.

type IScanUseCase interface {
	StartSession(ctx context.Context, orderID string) error
	EndSession(orderID string)
	SessionState(orderID string) SessionState
	Commit(ctx context.Context, orderID, barcode string) (CommitResult, error)
	SetPartQuantity(ctx context.Context, orderID, barcode string, qty int) (entities.ScannedPart, error)
	DeletePart(ctx context.Context, orderID, barcode string) error
	PendingScans(ctx context.Context, orderID string) ([]entities.PendingScan, error)
}

// ScanUseCase serializes all record-store part mutations per order: a live
// commit, a queue drain and a manual edit never interleave for the same
// order, so quantity increments cannot race and under-count.
type ScanUseCase struct {
	store   interfaces.IRecordStore
	queue   interfaces.IScanQueue
	timeout time.Duration

	mu       sync.Mutex
	sessions map[string]*orderSession
}

type orderSession struct {
	mu    sync.Mutex
	state SessionState
}

var _ IScanUseCase = (*ScanUseCase)(nil)

func NewScanUseCase(store interfaces.IRecordStore, queue interfaces.IScanQueue, commitTimeout time.Duration) *ScanUseCase {
	if commitTimeout <= 0 {
		commitTimeout = 10 * time.Second
	}
	return &ScanUseCase{
		store:    store,
		queue:    queue,
		timeout:  commitTimeout,
		sessions: make(map[string]*orderSession),
	}
}

func (u *ScanUseCase) session(orderID string) *orderSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[orderID]
	if !ok {
		s = &orderSession{state: SessionIdle}
		u.sessions[orderID] = s
	}
	return s
}

// StartSession moves an order from Idle to Scanning. Starting a session on a
// finalized order is refused up front rather than on the first scan.
func (u *ScanUseCase) StartSession(ctx context.Context, orderID string) error {
	if orderID == "" {
		return ErrInvalidOrderID
	}
	order, err := u.store.GetOrderByID(ctx, orderID)
	if err != nil && !interfaces.IsTransient(err) {
		return err
	}
	// Offline start is allowed: scans will queue. Only a positive
	// "finalized" answer blocks the session.
	if err == nil {
		if order.ID == "" {
			return ErrOrderNotFound
		}
		if !order.IsDraft() {
			return ErrOrderFinalized
		}
	}
	s := u.session(orderID)
	s.mu.Lock()
	s.state = SessionScanning
	s.mu.Unlock()
	return nil
}

func (u *ScanUseCase) EndSession(orderID string) {
	s := u.session(orderID)
	s.mu.Lock()
	s.state = SessionIdle
	s.mu.Unlock()
}

func (u *ScanUseCase) SessionState(orderID string) SessionState {
	s := u.session(orderID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Commit is the live scan path: look up the order, upsert-increment the part,
// and on connectivity failure queue the barcode instead of failing. Business
// rejections are never queued.
func (u *ScanUseCase) Commit(ctx context.Context, orderID, barcode string) (CommitResult, error) {
	return u.commit(ctx, orderID, barcode, true)
}

// CommitPending is the drain variant: identical semantics except a transient
// failure leaves the entry where it is instead of appending a duplicate.
func (u *ScanUseCase) CommitPending(ctx context.Context, orderID, barcode string) (CommitResult, error) {
	return u.commit(ctx, orderID, barcode, false)
}

func (u *ScanUseCase) commit(ctx context.Context, orderID, barcode string, enqueueOnTransient bool) (CommitResult, error) {
	if orderID == "" {
		return CommitResult{}, ErrInvalidOrderID
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return CommitResult{}, ErrInvalidBarcode
	}

	s := u.session(orderID)
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = SessionCommitting
	defer func() { s.state = prev }()

	cctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	order, err := u.store.GetOrderByID(cctx, orderID)
	if err != nil {
		if interfaces.IsTransient(err) {
			return u.resolveTransient(ctx, orderID, barcode, enqueueOnTransient)
		}
		return CommitResult{}, err
	}
	if order.ID == "" {
		metrics.ScansRejected.Inc()
		return CommitResult{Status: CommitRejected, Reason: "order not found"}, nil
	}
	if !order.IsDraft() {
		metrics.ScansRejected.Inc()
		return CommitResult{Status: CommitRejected, Reason: "order finalized"}, nil
	}

	part, err := u.store.UpsertPartIncrement(cctx, orderID, barcode)
	if err != nil {
		if interfaces.IsTransient(err) {
			return u.resolveTransient(ctx, orderID, barcode, enqueueOnTransient)
		}
		return CommitResult{}, err
	}
	metrics.ScansCommitted.Inc()
	return CommitResult{Status: CommitCommitted, Part: part}, nil
}

func (u *ScanUseCase) resolveTransient(ctx context.Context, orderID, barcode string, enqueue bool) (CommitResult, error) {
	if !enqueue {
		return CommitResult{Status: CommitQueued, Reason: "record store unreachable"}, nil
	}
	if _, err := u.queue.Append(ctx, orderID, barcode); err != nil {
		// Losing a scan is worse than failing loudly.
		return CommitResult{}, err
	}
	return CommitResult{Status: CommitQueued, Reason: "record store unreachable"}, nil
}

// SetPartQuantity is a validated edit on an existing part, draft orders
// only.
func (u *ScanUseCase) SetPartQuantity(ctx context.Context, orderID, barcode string, qty int) (entities.ScannedPart, error) {
	if orderID == "" {
		return entities.ScannedPart{}, ErrInvalidOrderID
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return entities.ScannedPart{}, ErrInvalidBarcode
	}
	if qty < 1 {
		return entities.ScannedPart{}, ErrInvalidQuantity
	}

	s := u.session(orderID)
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := u.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.ScannedPart{}, err
	}
	if order.ID == "" {
		return entities.ScannedPart{}, ErrOrderNotFound
	}
	if !order.IsDraft() {
		return entities.ScannedPart{}, ErrOrderFinalized
	}

	part, err := u.store.SetPartQuantity(ctx, orderID, barcode, qty)
	if err != nil {
		return entities.ScannedPart{}, err
	}
	if part.Barcode == "" {
		return entities.ScannedPart{}, ErrPartNotFound
	}
	return part, nil
}

func (u *ScanUseCase) DeletePart(ctx context.Context, orderID, barcode string) error {
	if orderID == "" {
		return ErrInvalidOrderID
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return ErrInvalidBarcode
	}

	s := u.session(orderID)
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := u.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}
	if !order.IsDraft() {
		return ErrOrderFinalized
	}
	return u.store.DeletePart(ctx, orderID, barcode)
}

func (u *ScanUseCase) PendingScans(ctx context.Context, orderID string) ([]entities.PendingScan, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.queue.List(ctx, orderID)
}
