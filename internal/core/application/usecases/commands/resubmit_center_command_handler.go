package commands

import (
	"context"
	"time"

	"medcourier/internal/core/domain/model/approval"
)

// ResubmitCenterCommandHandler reopens rejected approval scopes.
type ResubmitCenterCommandHandler struct {
	uowFactory CenterUoWFactory
}

// NewResubmitCenterCommandHandler creates a handler for center resubmissions.
func NewResubmitCenterCommandHandler(uowFactory CenterUoWFactory) ResubmitCenterCommandHandler {
	return ResubmitCenterCommandHandler{uowFactory: uowFactory}
}

// Handle resets the targeted scope to pending, preserving rejection history.
func (h ResubmitCenterCommandHandler) Handle(ctx context.Context, command ResubmitCenterCommand) error {
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

	centerRepo := uow.CenterRepository()
	aggregate, err := centerRepo.Get(ctx, command.CenterID())
	if err != nil {
		return err
	}

	scope := approval.HQScope()
	if hospitalID := command.HospitalID(); hospitalID != nil {
		scope, err = approval.HospitalScope(*hospitalID)
		if err != nil {
			return err
		}
	}

	if err = aggregate.Approval().Resubmit(scope, command.ActorID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = centerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
