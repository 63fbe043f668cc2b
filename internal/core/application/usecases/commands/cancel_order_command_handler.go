package commands

import (
	"context"
	"errors"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"
)

// ErrOrderNotCancellable is returned when a cancellation does not match any
// order. The order may not exist, may belong to another customer, or may no
// longer be pending; the three causes are collapsed into one outcome so the
// response leaks neither existence nor ownership information.
var ErrOrderNotCancellable = errors.New("order not found or cannot be cancelled")

// CancelOrderCommandHandler handles order cancellation.
// Relies on the store's conditional update: concurrent cancellations of the
// same order race at the storage layer and exactly one succeeds, without any
// application-level locking.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command and returns the updated,
// hydrated order. Returns ErrOrderNotCancellable when no pending order with
// the given id is owned by the requesting customer.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// The target state comes from the status state machine; only
	// Pending -> Cancelled is a legal cancellation.
	next, err := order.Pending.Cancel()
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.OrderRepository().UpdateStatusIf(
		ctx,
		cmd.OrderID(),
		cmd.CustomerID(),
		order.Pending,
		next,
	)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrOrderNotCancellable
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
