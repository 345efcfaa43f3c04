package commands

import (
	"context"
	"time"
)

// CancelHandoverCommandHandler abandons pending handovers. The order's
// handover link is cleared so a new handover can be initiated later.
type CancelHandoverCommandHandler struct {
	uowFactory HandoverUoWFactory
}

// NewCancelHandoverCommandHandler creates a handler for handover cancellation.
func NewCancelHandoverCommandHandler(uowFactory HandoverUoWFactory) CancelHandoverCommandHandler {
	return CancelHandoverCommandHandler{uowFactory: uowFactory}
}

// Handle cancels the handover and detaches it from its order. Custody stays
// with the original rider throughout.
func (h CancelHandoverCommandHandler) Handle(ctx context.Context, command CancelHandoverCommand) error {
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

	if err = transfer.Cancel(command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, transfer.OrderID())
	if err != nil {
		return err
	}
	aggregate.DetachHandover()

	if err = handoverRepo.Update(ctx, transfer); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
