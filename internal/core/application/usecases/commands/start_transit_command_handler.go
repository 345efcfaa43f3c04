package commands

import (
	"context"
	"log/slog"
	"time"

	"medcourier/internal/core/ports"
	"medcourier/internal/pkg/errs"
)

// StartTransitCommandHandler records that the carrying rider left the
// collection center. Only the assigned rider may report it.
type StartTransitCommandHandler struct {
	uowFactory AssignUoWFactory
	publisher  ports.EventPublisher
}

// NewStartTransitCommandHandler creates a handler for transit starts.
func NewStartTransitCommandHandler(uowFactory AssignUoWFactory,
	publisher ports.EventPublisher) StartTransitCommandHandler {
	return StartTransitCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle moves the order from picked up to in transit.
func (h StartTransitCommandHandler) Handle(ctx context.Context, command StartTransitCommand) error {
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

	if riderID := aggregate.Rider(); riderID == nil || !riderID.IsEqual(command.RiderID()) {
		return errs.NewAuthorizationError(command.RiderID().String(),
			"order "+aggregate.ID().String())
	}

	if err = aggregate.StartTransit(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		slog.Warn("transit started but change event not published",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
