package commands

import (
	"context"

	"medcourier/internal/core/domain/model/center"
)

// CreateCenterCommandHandler persists newly registered collection centers.
type CreateCenterCommandHandler struct {
	uowFactory CenterUoWFactory
}

// NewCreateCenterCommandHandler creates a handler for center registration.
func NewCreateCenterCommandHandler(uowFactory CenterUoWFactory) CreateCenterCommandHandler {
	return CreateCenterCommandHandler{uowFactory: uowFactory}
}

// Handle registers the center with a pending approval record covering every
// listed hospital scope plus HQ.
func (h CreateCenterCommandHandler) Handle(ctx context.Context, command CreateCenterCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := center.NewCenter(command.CenterID(), command.Name(),
		command.Location(), command.HospitalIDs()...)
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

	if err = uow.CenterRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
