// Package handover models the mid-route transfer of custody from one rider
// to another. A handover moves through initiated, accepted, and confirmed;
// custody and order attribution only change at confirmation.
package handover

import (
	"errors"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrHandoverIsNotConstructed is returned when using an improperly
// initialized Handover.
var ErrHandoverIsNotConstructed = errors.New(
	"Handover must be created via NewHandover or RestoreHandover constructor")

// Handover is the aggregate coordinating a rider-to-rider transfer for one
// order. The original rider initiates, the relieving rider accepts, and a
// scan of the handover QR confirms.
type Handover struct {
	id              kernel.UUID
	orderID         kernel.UUID
	originalRiderID kernel.UUID
	newRiderID      kernel.UUID
	reason          string
	point           kernel.GeoPoint
	status          Status
	initiatedAt     time.Time
	acceptedAt      *time.Time
	confirmedAt     *time.Time
	cancelledAt     *time.Time
	cancelReason    string
	version         int

	guard guard.ConstructorGuard
}

// NewHandover initiates a transfer of the order from the original rider to
// the relieving rider at the given point. The two riders must differ.
func NewHandover(id, orderID, originalRiderID, newRiderID kernel.UUID,
	reason string, point kernel.GeoPoint, initiatedAt time.Time) (*Handover, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		originalRiderID.Validate(),
		newRiderID.Validate(),
		point.Validate(),
	); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if initiatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("initiatedAt")
	}
	if originalRiderID.IsEqual(newRiderID) {
		return nil, errs.NewValueIsInvalidError("newRiderID: rider cannot hand over to themselves")
	}

	return &Handover{
		id:              id,
		orderID:         orderID,
		originalRiderID: originalRiderID,
		newRiderID:      newRiderID,
		reason:          reason,
		point:           point,
		status:          Initiated,
		initiatedAt:     initiatedAt,
		version:         1,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreHandoverParams carries all persisted fields of a handover.
type RestoreHandoverParams struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	OriginalRiderID kernel.UUID
	NewRiderID      kernel.UUID
	Reason          string
	Point           kernel.GeoPoint
	Status          Status
	InitiatedAt     time.Time
	AcceptedAt      *time.Time
	ConfirmedAt     *time.Time
	CancelledAt     *time.Time
	CancelReason    string
	Version         int
}

// RestoreHandover reconstitutes a handover from storage without invariant
// checks.
func RestoreHandover(params RestoreHandoverParams) *Handover {
	return &Handover{
		id:              params.ID,
		orderID:         params.OrderID,
		originalRiderID: params.OriginalRiderID,
		newRiderID:      params.NewRiderID,
		reason:          params.Reason,
		point:           params.Point,
		status:          params.Status,
		initiatedAt:     params.InitiatedAt,
		acceptedAt:      params.AcceptedAt,
		confirmedAt:     params.ConfirmedAt,
		cancelledAt:     params.CancelledAt,
		cancelReason:    params.CancelReason,
		version:         params.Version,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the handover was created through a constructor.
func (h *Handover) Validate() error {
	return h.guard.Validate(ErrHandoverIsNotConstructed)
}

// Accept records the relieving rider's agreement. Only the designated
// relieving rider may accept; anyone else fails authorization.
func (h *Handover) Accept(byRiderID kernel.UUID, at time.Time) error {
	if err := byRiderID.Validate(); err != nil {
		return err
	}
	if !byRiderID.IsEqual(h.newRiderID) {
		return errs.NewAuthorizationError(byRiderID.String(), "handover "+h.id.String())
	}

	status, err := h.status.Accept()
	if err != nil {
		return err
	}

	h.status = status
	h.acceptedAt = &at
	return nil
}

// Confirm completes the transfer after both riders scanned the handover QR.
func (h *Handover) Confirm(at time.Time) error {
	status, err := h.status.Confirm()
	if err != nil {
		return err
	}

	h.status = status
	h.confirmedAt = &at
	return nil
}

// Cancel abandons the transfer before confirmation with a mandatory reason;
// custody stays with the original rider.
func (h *Handover) Cancel(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	status, err := h.status.Cancel()
	if err != nil {
		return err
	}

	h.status = status
	h.cancelledAt = &at
	h.cancelReason = reason
	return nil
}

// ID returns the handover's unique identifier.
func (h *Handover) ID() kernel.UUID { return h.id }

// OrderID returns the order being transferred.
func (h *Handover) OrderID() kernel.UUID { return h.orderID }

// OriginalRiderID returns the rider giving up custody.
func (h *Handover) OriginalRiderID() kernel.UUID { return h.originalRiderID }

// NewRiderID returns the rider taking over custody.
func (h *Handover) NewRiderID() kernel.UUID { return h.newRiderID }

// Reason returns why the handover was requested.
func (h *Handover) Reason() string { return h.reason }

// Point returns the agreed handover location.
func (h *Handover) Point() kernel.GeoPoint { return h.point }

// Status returns the current lifecycle state.
func (h *Handover) Status() Status { return h.status }

// InitiatedAt returns when the original rider requested the handover.
func (h *Handover) InitiatedAt() time.Time { return h.initiatedAt }

// AcceptedAt returns when the relieving rider agreed, nil before then.
func (h *Handover) AcceptedAt() *time.Time { return h.acceptedAt }

// ConfirmedAt returns when custody moved, nil before then.
func (h *Handover) ConfirmedAt() *time.Time { return h.confirmedAt }

// CancelledAt returns when the handover was abandoned, nil otherwise.
func (h *Handover) CancelledAt() *time.Time { return h.cancelledAt }

// CancelReason returns why the handover was abandoned, empty otherwise.
func (h *Handover) CancelReason() string { return h.cancelReason }

// Version returns the optimistic concurrency version.
func (h *Handover) Version() int { return h.version }
