package usecase

import (
	"context"
	"errors"
	"time"

	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order number already exists")
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrOrderFinalized     = errors.New("order already finalized")
)

const searchLimit = 25

// IOrderUseCase exposes repair order lifecycle operations except
// finalization, which lives in IFinalizeUseCase.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, orderNumber string) (entities.RepairOrder, error)
	GetByNumber(ctx context.Context, orderNumber string) (entities.RepairOrder, error)
	GetByID(ctx context.Context, id string) (entities.RepairOrder, error)
	Search(ctx context.Context, query string) ([]entities.RepairOrder, error)
	DeleteOrder(ctx context.Context, id string) error
	ListParts(ctx context.Context, orderID string) ([]entities.ScannedPart, error)
}

type OrderUseCase struct {
	store interfaces.IRecordStore
	queue interfaces.IScanQueue
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.IRecordStore, queue interfaces.IScanQueue) *OrderUseCase {
	return &OrderUseCase{store: store, queue: queue}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, orderNumber string) (entities.RepairOrder, error) {
	number := entities.NormalizeOrderNumber(orderNumber)
	if number == "" {
		return entities.RepairOrder{}, ErrInvalidOrderNumber
	}

	o := entities.RepairOrder{
		ID:          uuid.NewString(),
		OrderNumber: number,
		Status:      entities.OrderStatusDraft,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.store.CreateOrder(ctx, o)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.RepairOrder{}, ErrOrderAlreadyExists
		}
		return entities.RepairOrder{}, err
	}
	return created, nil
}

func (u *OrderUseCase) GetByNumber(ctx context.Context, orderNumber string) (entities.RepairOrder, error) {
	number := entities.NormalizeOrderNumber(orderNumber)
	if number == "" {
		return entities.RepairOrder{}, ErrInvalidOrderNumber
	}

	o, err := u.store.GetOrderByNumber(ctx, number)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if o.ID == "" {
		return entities.RepairOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.RepairOrder, error) {
	if id == "" {
		return entities.RepairOrder{}, ErrInvalidOrderID
	}

	o, err := u.store.GetOrderByID(ctx, id)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if o.ID == "" {
		return entities.RepairOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// Search matches order numbers by substring, most recent first, capped.
func (u *OrderUseCase) Search(ctx context.Context, query string) ([]entities.RepairOrder, error) {
	return u.store.SearchOrders(ctx, entities.NormalizeOrderNumber(query), searchLimit)
}

// DeleteOrder removes a draft order and, by composition, its parts. A
// finalized order is part of billing history and cannot be deleted here.
func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !o.IsDraft() {
		return ErrOrderFinalized
	}
	if err := u.store.DeleteOrder(ctx, o.ID); err != nil {
		return err
	}
	// Pending scans are owned by the order; cascade them out of the local
	// queue too.
	return u.queue.PurgeOrder(ctx, o.ID)
}

func (u *OrderUseCase) ListParts(ctx context.Context, orderID string) ([]entities.ScannedPart, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.store.ListParts(ctx, orderID)
}
