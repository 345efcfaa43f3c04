package commands

import (
	"context"
	"log/slog"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/core/ports"
	"medcourier/internal/pkg/errs"
)

// CreateOrderCommandHandler registers sample orders. It verifies the center
// holds an effective approval for the destination hospital, computes the
// planned pickup distance, and issues the pickup and delivery QR codes in
// the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	distances  ports.DistanceCalculator
	publisher  ports.EventPublisher
	qrTTL      time.Duration
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// qrTTL bounds the validity of the issued pickup and delivery codes.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory,
	distances ports.DistanceCalculator, publisher ports.EventPublisher,
	qrTTL time.Duration) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		distances:  distances,
		publisher:  publisher,
		qrTTL:      qrTTL,
	}
}

// Handle registers the order at pending rider assignment and issues its QR
// codes. The order-changed event is published after commit; a publish
// failure never rolls back the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
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

	dispatchCenter, err := uow.CenterRepository().Get(ctx, command.CenterID())
	if err != nil {
		return err
	}

	receivingHospital, err := uow.HospitalRepository().Get(ctx, command.HospitalID())
	if err != nil {
		return err
	}

	allowed, err := dispatchCenter.MayDispatchTo(command.HospitalID())
	if err != nil {
		return err
	}
	if !allowed {
		return errs.NewAuthorizationError(dispatchCenter.ID().String(),
			"dispatch to hospital "+command.HospitalID().String())
	}

	pickupDistanceKm, err := h.distances.DistanceKm(dispatchCenter.Location(),
		receivingHospital.Location())
	if err != nil {
		return errs.NewExternalDependencyErrorWithCause("distance calculator", err)
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(command.OrderID(), command.CenterID(),
		command.HospitalID(), command.Urgency(), pickupDistanceKm, now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	qrRepo := uow.QRRepository()
	codes := []struct {
		kind    qr.Kind
		partyID kernel.UUID
	}{
		{qr.Pickup, command.CenterID()},
		{qr.Delivery, command.HospitalID()},
	}
	for _, issue := range codes {
		code, codeErr := qr.NewCode(kernel.NewUUID(), issue.kind, command.OrderID(),
			issue.partyID, now, now.Add(h.qrTTL))
		if codeErr != nil {
			return codeErr
		}
		if codeErr = qrRepo.AddCode(ctx, code); codeErr != nil {
			return codeErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		slog.Warn("order created but change event not published",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
