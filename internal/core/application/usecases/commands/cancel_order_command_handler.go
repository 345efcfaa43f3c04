package commands

import (
	"context"
	"log/slog"
	"time"

	"medcourier/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders and releases their riders.
type CancelOrderCommandHandler struct {
	uowFactory AssignUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory AssignUoWFactory,
	publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle cancels the order with its reason. A rider still bound to the
// order is marked available again in the same transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if riderID := aggregate.Rider(); riderID != nil {
		riderRepo := uow.RiderRepository()
		assignee, riderErr := riderRepo.Get(ctx, *riderID)
		if riderErr != nil {
			return riderErr
		}
		if riderErr = assignee.MarkAvailable(); riderErr != nil {
			return riderErr
		}
		if riderErr = riderRepo.Update(ctx, assignee); riderErr != nil {
			return riderErr
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		slog.Warn("order cancelled but change event not published",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
