package commands

import (
	"context"
	"time"

	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/pkg/errs"
)

// InitiateHandoverCommandHandler opens a handover for an order in flight.
// It verifies the requesting rider currently carries the order, links the
// handover to the order (at most one active per order), and issues the
// handover QR code that will later confirm the physical exchange.
type InitiateHandoverCommandHandler struct {
	uowFactory HandoverUoWFactory
	qrTTL      time.Duration
}

// NewInitiateHandoverCommandHandler creates a handler for handover requests.
// qrTTL bounds the validity of the issued handover code.
func NewInitiateHandoverCommandHandler(uowFactory HandoverUoWFactory,
	qrTTL time.Duration) InitiateHandoverCommandHandler {
	return InitiateHandoverCommandHandler{uowFactory: uowFactory, qrTTL: qrTTL}
}

// Handle opens the handover and issues its QR code.
func (h InitiateHandoverCommandHandler) Handle(ctx context.Context, command InitiateHandoverCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if riderID := aggregate.Rider(); riderID == nil || !riderID.IsEqual(command.FromRiderID()) {
		return errs.NewAuthorizationError(command.FromRiderID().String(),
			"order "+aggregate.ID().String())
	}

	now := time.Now().UTC()
	transfer, err := handover.NewHandover(kernel.NewUUID(), command.OrderID(),
		command.FromRiderID(), command.ToRiderID(), command.Reason(),
		command.Point(), now)
	if err != nil {
		return err
	}

	if err = aggregate.AttachHandover(transfer.ID()); err != nil {
		return err
	}

	code, err := qr.NewCode(kernel.NewUUID(), qr.Handover, command.OrderID(),
		transfer.ID(), now, now.Add(h.qrTTL))
	if err != nil {
		return err
	}

	if err = uow.HandoverRepository().Add(ctx, transfer); err != nil {
		return err
	}
	if err = uow.QRRepository().AddCode(ctx, code); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
