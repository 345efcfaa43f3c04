package commands

import (
	"context"
	"time"

	"medcourier/internal/core/domain/model/approval"
)

// RejectCenterCommandHandler applies scoped rejection decisions to centers.
type RejectCenterCommandHandler struct {
	uowFactory CenterUoWFactory
}

// NewRejectCenterCommandHandler creates a handler for center rejections.
func NewRejectCenterCommandHandler(uowFactory CenterUoWFactory) RejectCenterCommandHandler {
	return RejectCenterCommandHandler{uowFactory: uowFactory}
}

// Handle records the rejection with its reason in the decision history.
func (h RejectCenterCommandHandler) Handle(ctx context.Context, command RejectCenterCommand) error {
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

	if err = aggregate.Approval().Reject(scope, command.ApproverID(),
		command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = centerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
