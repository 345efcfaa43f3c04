package commands

import (
	"context"

	"medcourier/internal/core/domain/model/hospital"
)

// CreateHospitalCommandHandler persists newly registered hospitals.
type CreateHospitalCommandHandler struct {
	uowFactory HospitalUoWFactory
}

// NewCreateHospitalCommandHandler creates a handler for hospital registration.
func NewCreateHospitalCommandHandler(uowFactory HospitalUoWFactory) CreateHospitalCommandHandler {
	return CreateHospitalCommandHandler{uowFactory: uowFactory}
}

// Handle registers the hospital in Pending onboarding status.
func (h CreateHospitalCommandHandler) Handle(ctx context.Context, command CreateHospitalCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := hospital.NewHospital(command.HospitalID(), command.Name(),
		command.Kind(), command.Location())
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

	if err = uow.HospitalRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
