package commands

import (
	"context"
	"time"

	"medcourier/internal/core/domain/model/approval"
)

// RejectRiderCommandHandler records scoped rejections on riders.
type RejectRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewRejectRiderCommandHandler creates a handler for rider rejections.
func NewRejectRiderCommandHandler(uowFactory RiderUoWFactory) RejectRiderCommandHandler {
	return RejectRiderCommandHandler{uowFactory: uowFactory}
}

// Handle records the rejection with its reason in the decision history.
func (h RejectRiderCommandHandler) Handle(ctx context.Context, command RejectRiderCommand) error {
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

	if err = aggregate.Approval().Reject(scope, command.ApproverID(),
		command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
