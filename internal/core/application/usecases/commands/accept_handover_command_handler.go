package commands

import (
	"context"
	"time"
)

// AcceptHandoverCommandHandler stamps the relieving rider's agreement.
type AcceptHandoverCommandHandler struct {
	uowFactory HandoverUoWFactory
}

// NewAcceptHandoverCommandHandler creates a handler for handover acceptance.
func NewAcceptHandoverCommandHandler(uowFactory HandoverUoWFactory) AcceptHandoverCommandHandler {
	return AcceptHandoverCommandHandler{uowFactory: uowFactory}
}

// Handle records the acceptance. Only the designated relieving rider may
// accept; custody does not move until the handover QR is scanned.
func (h AcceptHandoverCommandHandler) Handle(ctx context.Context, command AcceptHandoverCommand) error {
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

	handoverRepo := uow.HandoverRepository()
	transfer, err := handoverRepo.Get(ctx, command.HandoverID())
	if err != nil {
		return err
	}

	if err = transfer.Accept(command.ByRiderID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = handoverRepo.Update(ctx, transfer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
