package commands

import (
	"context"
	"time"

	"medcourier/internal/core/domain/model/approval"
)

// ResubmitRiderCommandHandler reopens rejected approval scopes.
type ResubmitRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewResubmitRiderCommandHandler creates a handler for rider resubmissions.
func NewResubmitRiderCommandHandler(uowFactory RiderUoWFactory) ResubmitRiderCommandHandler {
	return ResubmitRiderCommandHandler{uowFactory: uowFactory}
}

// Handle resets the targeted scope to pending, preserving rejection history.
func (h ResubmitRiderCommandHandler) Handle(ctx context.Context, command ResubmitRiderCommand) error {
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

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
