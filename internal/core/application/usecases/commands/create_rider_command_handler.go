package commands

import (
	"context"

	"medcourier/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler persists newly onboarded riders.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider onboarding.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{uowFactory: uowFactory}
}

// Handle onboards the rider with a pending approval record covering every
// listed hospital scope plus HQ.
func (h CreateRiderCommandHandler) Handle(ctx context.Context, command CreateRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := rider.NewRider(command.RiderID(), command.Name(),
		command.Phone(), command.HospitalIDs()...)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
