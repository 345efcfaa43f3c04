package commands

import (
	"context"

	"medcourier/internal/core/domain/model/rider"
)

// SetRiderAvailabilityCommandHandler moves riders on and off shift. The
// change persists under the rider's version check, so it cannot race a
// concurrent assignment: whichever commits second loses.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewSetRiderAvailabilityCommandHandler creates a handler for availability changes.
func NewSetRiderAvailabilityCommandHandler(
	uowFactory RiderUoWFactory) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle applies the requested transition to the rider.
func (h SetRiderAvailabilityCommandHandler) Handle(
	ctx context.Context, command SetRiderAvailabilityCommand) error {
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

	riderRepo := uow.RiderRepository()
	aggregate, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if command.Availability() == rider.Available {
		err = aggregate.MarkAvailable()
	} else {
		err = aggregate.MarkOffline()
	}
	if err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
