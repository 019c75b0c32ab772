package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/usecase/interfaces"
	mock_interfaces "mecanica_parts/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestScanUseCase_StartSession(t *testing.T) {
	t.Run("finalized order refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(entities.RepairOrder{ID: "id-1", Status: entities.OrderStatusFinalized}, nil)

		err := uc.StartSession(context.Background(), "id-1")
		if !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
		if uc.SessionState("id-1") != SessionIdle {
			t.Fatalf("session must stay idle")
		}
	})

	t.Run("offline start allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(entities.RepairOrder{}, &interfaces.TransientError{Err: errors.New("dial tcp")})

		if err := uc.StartSession(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.SessionState("id-1") != SessionScanning {
			t.Fatalf("expected scanning state")
		}
	})

	t.Run("end session returns to idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(entities.RepairOrder{ID: "id-1", Status: entities.OrderStatusDraft}, nil)

		if err := uc.StartSession(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.EndSession("id-1")
		if uc.SessionState("id-1") != SessionIdle {
			t.Fatalf("expected idle state")
		}
	})
}

func TestScanUseCase_Commit(t *testing.T) {
	draft := entities.RepairOrder{ID: "id-1", OrderNumber: "OS-1", Status: entities.OrderStatusDraft}

	t.Run("invalid barcode", func(t *testing.T) {
		uc := NewScanUseCase(nil, nil, time.Second)
		_, err := uc.Commit(context.Background(), "id-1", "   ")
		if !errors.Is(err, ErrInvalidBarcode) {
			t.Fatalf("expected ErrInvalidBarcode, got %v", err)
		}
	})

	t.Run("committed increments part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(draft, nil)
		store.EXPECT().UpsertPartIncrement(gomock.Any(), "id-1", "789").Return(entities.ScannedPart{OrderID: "id-1", Barcode: "789", Quantity: 2}, nil)

		res, err := uc.Commit(context.Background(), "id-1", " 789 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != CommitCommitted || res.Part.Quantity != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("unknown order rejected, not queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIScanQueue(ctrl)
		uc := NewScanUseCase(store, queue, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-404").Return(entities.RepairOrder{}, nil)

		res, err := uc.Commit(context.Background(), "id-404", "789")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != CommitRejected {
			t.Fatalf("expected rejected, got %+v", res)
		}
	})

	t.Run("finalized order rejected, not queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIScanQueue(ctrl)
		uc := NewScanUseCase(store, queue, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(entities.RepairOrder{ID: "id-1", Status: entities.OrderStatusFinalized}, nil)

		res, err := uc.Commit(context.Background(), "id-1", "789")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != CommitRejected || res.Reason != "order finalized" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("transient lookup failure queues the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIScanQueue(ctrl)
		uc := NewScanUseCase(store, queue, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(entities.RepairOrder{}, &interfaces.TransientError{Err: errors.New("dial tcp")})
		queue.EXPECT().Append(gomock.Any(), "id-1", "789").Return(entities.PendingScan{ID: 1, OrderID: "id-1", Barcode: "789"}, nil)

		res, err := uc.Commit(context.Background(), "id-1", "789")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != CommitQueued {
			t.Fatalf("expected queued, got %+v", res)
		}
	})

	t.Run("transient write failure queues the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIScanQueue(ctrl)
		uc := NewScanUseCase(store, queue, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(draft, nil)
		store.EXPECT().UpsertPartIncrement(gomock.Any(), "id-1", "789").Return(entities.ScannedPart{}, &interfaces.TransientError{Err: errors.New("dial tcp")})
		queue.EXPECT().Append(gomock.Any(), "id-1", "789").Return(entities.PendingScan{ID: 1}, nil)

		res, err := uc.Commit(context.Background(), "id-1", "789")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != CommitQueued {
			t.Fatalf("expected queued, got %+v", res)
		}
	})

	t.Run("non-transient failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIScanQueue(ctrl)
		uc := NewScanUseCase(store, queue, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(draft, nil)
		store.EXPECT().UpsertPartIncrement(gomock.Any(), "id-1", "789").Return(entities.ScannedPart{}, errors.New("validation"))

		_, err := uc.Commit(context.Background(), "id-1", "789")
		if err == nil || err.Error() != "validation" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("state restored after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(draft, nil).Times(2)
		store.EXPECT().UpsertPartIncrement(gomock.Any(), "id-1", "789").Return(entities.ScannedPart{OrderID: "id-1", Barcode: "789", Quantity: 1}, nil)

		if err := uc.StartSession(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Commit(context.Background(), "id-1", "789"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.SessionState("id-1") != SessionScanning {
			t.Fatalf("expected scanning state after commit")
		}
	})
}

func TestScanUseCase_CommitPending(t *testing.T) {
	t.Run("transient failure does not append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIScanQueue(ctrl)
		uc := NewScanUseCase(store, queue, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(entities.RepairOrder{}, &interfaces.TransientError{Err: errors.New("dial tcp")})

		res, err := uc.CommitPending(context.Background(), "id-1", "789")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != CommitQueued {
			t.Fatalf("expected queued, got %+v", res)
		}
	})
}

func TestScanUseCase_SetPartQuantity(t *testing.T) {
	draft := entities.RepairOrder{ID: "id-1", Status: entities.OrderStatusDraft}

	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewScanUseCase(nil, nil, time.Second)
		_, err := uc.SetPartQuantity(context.Background(), "id-1", "789", 0)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("part not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(draft, nil)
		store.EXPECT().SetPartQuantity(gomock.Any(), "id-1", "789", 3).Return(entities.ScannedPart{}, nil)

		_, err := uc.SetPartQuantity(context.Background(), "id-1", "789", 3)
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("finalized order refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(entities.RepairOrder{ID: "id-1", Status: entities.OrderStatusFinalized}, nil)

		_, err := uc.SetPartQuantity(context.Background(), "id-1", "789", 3)
		if !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
	})

	t.Run("override success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewScanUseCase(store, nil, time.Second)

		store.EXPECT().GetOrderByID(gomock.Any(), "id-1").Return(draft, nil)
		store.EXPECT().SetPartQuantity(gomock.Any(), "id-1", "789", 3).Return(entities.ScannedPart{OrderID: "id-1", Barcode: "789", Quantity: 3}, nil)

		part, err := uc.SetPartQuantity(context.Background(), "id-1", "789", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if part.Quantity != 3 {
			t.Fatalf("unexpected part: %+v", part)
		}
	})
}
