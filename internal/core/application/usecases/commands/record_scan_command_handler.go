package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/core/ports"
	"medcourier/internal/pkg/errs"
)

// RecordScanCommandHandler is the single ingestion point for QR scans. A
// pickup scan moves the order to picked up, a delivery scan completes it and
// frees the rider, and a handover scan confirms the pending handover and
// reassigns custody. Duplicate scans of the same code are absorbed
// idempotently: the retry is recorded in the audit trail and the order state
// is left untouched.
type RecordScanCommandHandler struct {
	uowFactory ScanUoWFactory
	distances  ports.DistanceCalculator
	publisher  ports.EventPublisher
}

// NewRecordScanCommandHandler creates a handler for QR scan ingestion.
func NewRecordScanCommandHandler(uowFactory ScanUoWFactory,
	distances ports.DistanceCalculator, publisher ports.EventPublisher) RecordScanCommandHandler {
	return RecordScanCommandHandler{
		uowFactory: uowFactory,
		distances:  distances,
		publisher:  publisher,
	}
}

// Handle validates the scanned payload against the issued code, appends the
// scan to the ledger, and applies the matching order transition.
func (h RecordScanCommandHandler) Handle(ctx context.Context, command RecordScanCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	kind, payloadOrderID, qrID, err := qr.DecodePayload(command.Payload())
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

	qrRepo := uow.QRRepository()
	code, err := qrRepo.GetCode(ctx, qrID)
	if err != nil {
		return err
	}
	if code.Kind() != kind || !code.OrderID().IsEqual(payloadOrderID) {
		return errs.NewValueIsInvalidError("payload: qr code is bound to a different order")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, code.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	event, err := qr.NewScanEvent(kernel.NewUUID(), code, command.ActorID(),
		command.ActorRole(), command.Location(), now)
	if err != nil {
		return err
	}

	if err = qrRepo.AddScan(ctx, event); err != nil {
		if !errors.Is(err, ports.ErrDuplicateScan) {
			return err
		}
		// Client retry: keep the attempt visible, change nothing else.
		if err = qrRepo.AddDuplicateScan(ctx, event); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	switch code.Kind() {
	case qr.Pickup:
		err = aggregate.MarkPickedUp(now)
	case qr.Delivery:
		err = h.completeDelivery(ctx, uow, aggregate, now)
	case qr.Handover:
		err = h.confirmHandover(ctx, uow, aggregate, code, command.ActorID(), now)
	default:
		err = errs.NewValueIsInvalidError("qr kind")
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, aggregate, event)
	return nil
}

// completeDelivery marks the order delivered and releases its rider.
func (h RecordScanCommandHandler) completeDelivery(ctx context.Context, uow ScanUoW,
	aggregate *order.Order, now time.Time) error {
	if err := aggregate.MarkDelivered(now); err != nil {
		return err
	}

	riderID := aggregate.Rider()
	if riderID == nil {
		return nil
	}

	riderRepo := uow.RiderRepository()
	assignee, err := riderRepo.Get(ctx, *riderID)
	if err != nil {
		return err
	}
	if err = assignee.MarkAvailable(); err != nil {
		return err
	}
	return riderRepo.Update(ctx, assignee)
}

// confirmHandover completes the pending handover the scanned code was issued
// for: only the relieving rider's scan counts, custody moves to them, and
// the order's distance attribution is split at the handover point.
func (h RecordScanCommandHandler) confirmHandover(ctx context.Context, uow ScanUoW,
	aggregate *order.Order, code qr.Code, actorID kernel.UUID, now time.Time) error {
	handoverRepo := uow.HandoverRepository()
	transfer, err := handoverRepo.Get(ctx, code.PartyID())
	if err != nil {
		return err
	}

	if !actorID.IsEqual(transfer.NewRiderID()) {
		return errs.NewAuthorizationError(actorID.String(),
			"confirm handover "+transfer.ID().String())
	}

	if err = transfer.Confirm(now); err != nil {
		return err
	}

	dispatchCenter, err := uow.CenterRepository().Get(ctx, aggregate.CenterID())
	if err != nil {
		return err
	}
	receivingHospital, err := uow.HospitalRepository().Get(ctx, aggregate.HospitalID())
	if err != nil {
		return err
	}

	riderAKm, err := h.distances.DistanceKm(dispatchCenter.Location(), transfer.Point())
	if err != nil {
		return errs.NewExternalDependencyErrorWithCause("distance calculator", err)
	}
	riderBKm, err := h.distances.DistanceKm(transfer.Point(), receivingHospital.Location())
	if err != nil {
		return errs.NewExternalDependencyErrorWithCause("distance calculator", err)
	}

	originalRiderID := transfer.OriginalRiderID()
	if err = aggregate.ApplyHandoverSplit(transfer.NewRiderID(), riderAKm, riderBKm); err != nil {
		return err
	}

	riderRepo := uow.RiderRepository()
	original, err := riderRepo.Get(ctx, originalRiderID)
	if err != nil {
		return err
	}
	if err = original.MarkAvailable(); err != nil {
		return err
	}
	if err = riderRepo.Update(ctx, original); err != nil {
		return err
	}

	relieving, err := riderRepo.Get(ctx, transfer.NewRiderID())
	if err != nil {
		return err
	}
	if err = relieving.MarkBusy(); err != nil {
		return err
	}
	if err = riderRepo.Update(ctx, relieving); err != nil {
		return err
	}

	return handoverRepo.Update(ctx, transfer)
}

func (h RecordScanCommandHandler) publish(ctx context.Context, aggregate *order.Order, event qr.ScanEvent) {
	if err := h.publisher.PublishScanRecorded(ctx, event); err != nil {
		slog.Warn("scan recorded but event not published",
			"order_id", aggregate.ID().String(), "error", err)
	}
	if err := h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		slog.Warn("order changed but event not published",
			"order_id", aggregate.ID().String(), "error", err)
	}
}
