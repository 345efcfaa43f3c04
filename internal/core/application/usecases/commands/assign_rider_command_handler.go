package commands

import (
	"context"
	"log/slog"
	"time"

	"medcourier/internal/core/domain/services"
	"medcourier/internal/core/ports"
)

// AssignRiderCommandHandler orchestrates rider assignment. The rider's
// availability check and the order transition commit in one transaction with
// version checks on both aggregates, so two dispatchers racing for the same
// rider cannot both succeed: the second write fails with a state conflict.
type AssignRiderCommandHandler struct {
	uowFactory AssignUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory AssignUoWFactory,
	publisher ports.EventPublisher) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle assigns the rider, marking them busy atomically with the order.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	assignee, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if err = services.NewRiderAssigner().Assign(aggregate, assignee, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		slog.Warn("rider assigned but change event not published",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
