package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"mecanica_parts/internal/adapter/persistence/queue"
	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// flowStore is an in-memory IRecordStore with a connectivity switch, used to
// walk the whole offline round trip against a real on-disk queue.
type flowStore struct {
	mu      sync.Mutex
	offline bool
	orders  map[string]entities.RepairOrder
	parts   map[string]map[string]entities.ScannedPart
	entries map[string]entities.FinalizedEntry
	lines   map[string][]entities.FinalizedLine
}

var _ interfaces.IRecordStore = (*flowStore)(nil)

func newFlowStore() *flowStore {
	return &flowStore{
		orders:  make(map[string]entities.RepairOrder),
		parts:   make(map[string]map[string]entities.ScannedPart),
		entries: make(map[string]entities.FinalizedEntry),
		lines:   make(map[string][]entities.FinalizedLine),
	}
}

func (s *flowStore) setOffline(offline bool) {
	s.mu.Lock()
	s.offline = offline
	s.mu.Unlock()
}

func (s *flowStore) check() error {
	if s.offline {
		return &interfaces.TransientError{Err: errors.New("dial tcp: connection refused")}
	}
	return nil
}

func (s *flowStore) CreateOrder(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return entities.RepairOrder{}, err
	}
	for _, existing := range s.orders {
		if existing.OrderNumber == o.OrderNumber {
			return entities.RepairOrder{}, interfaces.ErrConflict
		}
	}
	s.orders[o.ID] = o
	return o, nil
}

func (s *flowStore) GetOrderByID(_ context.Context, id string) (entities.RepairOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return entities.RepairOrder{}, err
	}
	return s.orders[id], nil
}

func (s *flowStore) GetOrderByNumber(_ context.Context, orderNumber string) (entities.RepairOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return entities.RepairOrder{}, err
	}
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return entities.RepairOrder{}, nil
}

func (s *flowStore) SearchOrders(_ context.Context, query string, limit int) ([]entities.RepairOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	var out []entities.RepairOrder
	for _, o := range s.orders {
		if len(out) == limit {
			break
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *flowStore) DeleteOrder(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	delete(s.orders, orderID)
	delete(s.parts, orderID)
	return nil
}

func (s *flowStore) ListParts(_ context.Context, orderID string) ([]entities.ScannedPart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	var out []entities.ScannedPart
	for _, p := range s.parts[orderID] {
		out = append(out, p)
	}
	return out, nil
}

func (s *flowStore) UpsertPartIncrement(_ context.Context, orderID, barcode string) (entities.ScannedPart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return entities.ScannedPart{}, err
	}
	if s.parts[orderID] == nil {
		s.parts[orderID] = make(map[string]entities.ScannedPart)
	}
	p := s.parts[orderID][barcode]
	p.OrderID = orderID
	p.Barcode = barcode
	p.Quantity++
	p.UpdatedAt = time.Now().UTC()
	s.parts[orderID][barcode] = p
	return p, nil
}

func (s *flowStore) SetPartQuantity(_ context.Context, orderID, barcode string, qty int) (entities.ScannedPart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return entities.ScannedPart{}, err
	}
	p, ok := s.parts[orderID][barcode]
	if !ok {
		return entities.ScannedPart{}, nil
	}
	p.Quantity = qty
	p.UpdatedAt = time.Now().UTC()
	s.parts[orderID][barcode] = p
	return p, nil
}

func (s *flowStore) DeletePart(_ context.Context, orderID, barcode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	delete(s.parts[orderID], barcode)
	return nil
}

func (s *flowStore) FinalizeOrder(_ context.Context, order entities.RepairOrder, parts []entities.ScannedPart) (entities.FinalizedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return entities.FinalizedEntry{}, err
	}
	current := s.orders[order.ID]
	if !current.IsDraft() {
		return entities.FinalizedEntry{}, nil
	}

	now := time.Now().UTC()
	current.Status = entities.OrderStatusFinalized
	current.FinalizedAt = &now
	s.orders[order.ID] = current

	entry := entities.FinalizedEntry{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		FinalizedAt: now,
		CreatedAt:   now,
	}
	s.entries[entry.ID] = entry
	for _, p := range parts {
		s.lines[entry.ID] = append(s.lines[entry.ID], entities.FinalizedLine{
			EntryID:  entry.ID,
			Barcode:  p.Barcode,
			Quantity: p.Quantity,
		})
	}
	return entry, nil
}

func (s *flowStore) ListFinalizedEntries(_ context.Context) ([]entities.FinalizedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	var out []entities.FinalizedEntry
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}

func (s *flowStore) GetFinalizedEntry(_ context.Context, entryID string) (entities.FinalizedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return entities.FinalizedEntry{}, err
	}
	return s.entries[entryID], nil
}

func (s *flowStore) ListFinalizedLines(_ context.Context, entryID string) ([]entities.FinalizedLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.lines[entryID], nil
}

// TestOfflineScanRoundTrip walks the full workflow: scan online, lose the
// store, keep scanning into the durable queue, reconnect, drain, finalize.
func TestOfflineScanRoundTrip(t *testing.T) {
	ctx := context.Background()

	store := newFlowStore()
	q, err := queue.Open(filepath.Join(t.TempDir(), "pending.db"))
	if err != nil {
		t.Fatalf("open queue: %v", err)
	}
	defer q.Close()

	scans := NewScanUseCase(store, q, time.Second)
	orders := NewOrderUseCase(store, q)
	syncUC := NewSyncUseCase(q, scans, nil)
	finalize := NewFinalizeUseCase(store, q, scans)

	order, err := orders.CreateOrder(ctx, "R-100")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := scans.StartSession(ctx, order.ID); err != nil {
		t.Fatalf("start session: %v", err)
	}

	// Online scan commits immediately.
	res, err := scans.Commit(ctx, order.ID, "111")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if res.Status != CommitCommitted || res.Part.Quantity != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	// Store goes away mid-session; scans queue instead of failing.
	store.setOffline(true)
	for _, barcode := range []string{"111", "222"} {
		res, err := scans.Commit(ctx, order.ID, barcode)
		if err != nil {
			t.Fatalf("offline commit: %v", err)
		}
		if res.Status != CommitQueued {
			t.Fatalf("expected queued, got %+v", res)
		}
	}
	pending, err := scans.PendingScans(ctx, order.ID)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending scans, got %d", len(pending))
	}

	// Finalize must refuse while the queue is non-empty.
	if _, err := finalize.Finalize(ctx, order.ID); !errors.Is(err, ErrQueueNotEmpty) {
		t.Fatalf("expected ErrQueueNotEmpty, got %v", err)
	}

	// A drain while still offline retains everything without duplicating.
	dr, err := syncUC.Drain(ctx, order.ID)
	if err != nil {
		t.Fatalf("offline drain: %v", err)
	}
	if len(dr.Committed) != 0 || len(dr.StillFailed) != 2 {
		t.Fatalf("unexpected offline drain: %+v", dr)
	}
	if n, _ := q.CountByOrder(ctx, order.ID); n != 2 {
		t.Fatalf("queue depth changed while offline: %d", n)
	}

	// Back online: the drain commits FIFO and empties the queue.
	store.setOffline(false)
	dr, err = syncUC.Drain(ctx, order.ID)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(dr.Committed) != 2 || len(dr.StillFailed) != 0 {
		t.Fatalf("unexpected drain: %+v", dr)
	}

	parts, err := orders.ListParts(ctx, order.ID)
	if err != nil {
		t.Fatalf("list parts: %v", err)
	}
	got := make(map[string]int, len(parts))
	for _, p := range parts {
		got[p.Barcode] = p.Quantity
	}
	if got["111"] != 2 || got["222"] != 1 {
		t.Fatalf("unexpected quantities: %+v", got)
	}

	// Queue is empty now, so finalize goes through exactly once.
	entry, err := finalize.Finalize(ctx, order.ID)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if _, err := finalize.Finalize(ctx, order.ID); !errors.Is(err, ErrOrderFinalized) {
		t.Fatalf("expected ErrOrderFinalized on second finalize, got %v", err)
	}

	lines, err := finalize.ListLines(ctx, entry.ID)
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 snapshot lines, got %d", len(lines))
	}

	// A scan after finalization is rejected, never queued.
	res, err = scans.Commit(ctx, order.ID, "333")
	if err != nil {
		t.Fatalf("post-finalize commit: %v", err)
	}
	if res.Status != CommitRejected {
		t.Fatalf("expected rejected, got %+v", res)
	}
	if n, _ := q.CountByOrder(ctx, order.ID); n != 0 {
		t.Fatalf("rejected scan must not queue, depth %d", n)
	}
}
