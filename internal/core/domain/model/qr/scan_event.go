package qr

import (
	"errors"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrScanEventIsNotConstructed is returned when using an improperly
// initialized ScanEvent.
var ErrScanEventIsNotConstructed = errors.New(
	"ScanEvent must be created via NewScanEvent or RestoreScanEvent constructor")

// ScanEvent is an immutable record of one QR scan. Events are never updated
// or deleted; the custody timeline is reconstructed from them.
type ScanEvent struct {
	id         kernel.UUID
	qrID       kernel.UUID
	kind       Kind
	orderID    kernel.UUID
	actorID    kernel.UUID
	actorRole  Role
	location   *kernel.GeoPoint
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewScanEvent records a scan of the given code. Scanning a code past its
// expiry fails with a resource-expired error; an expired code can never
// produce a valid event.
func NewScanEvent(id kernel.UUID, code Code, actorID kernel.UUID, actorRole Role,
	location *kernel.GeoPoint, occurredAt time.Time) (ScanEvent, error) {
	if err := errors.Join(
		id.Validate(),
		code.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return ScanEvent{}, err
	}
	if occurredAt.IsZero() {
		return ScanEvent{}, errs.NewValueIsRequiredError("occurredAt")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return ScanEvent{}, err
		}
	}
	if code.IsExpiredAt(occurredAt) {
		return ScanEvent{}, errs.NewResourceExpiredError("qr code", code.ExpiresAt())
	}

	return ScanEvent{
		id:         id,
		qrID:       code.ID(),
		kind:       code.Kind(),
		orderID:    code.OrderID(),
		actorID:    actorID,
		actorRole:  actorRole,
		location:   location,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreScanEvent reconstitutes a persisted event without re-running the
// expiry check, which only applies at scan time.
func RestoreScanEvent(id, qrID kernel.UUID, kind Kind, orderID, actorID kernel.UUID,
	actorRole Role, location *kernel.GeoPoint, occurredAt time.Time) ScanEvent {
	return ScanEvent{
		id:         id,
		qrID:       qrID,
		kind:       kind,
		orderID:    orderID,
		actorID:    actorID,
		actorRole:  actorRole,
		location:   location,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the event was created through a constructor.
func (e ScanEvent) Validate() error {
	return e.guard.Validate(ErrScanEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e ScanEvent) ID() kernel.UUID { return e.id }

// QRID returns the scanned code's identifier.
func (e ScanEvent) QRID() kernel.UUID { return e.qrID }

// Kind returns what the scanned code confirms.
func (e ScanEvent) Kind() Kind { return e.kind }

// OrderID returns the order the scanned code is bound to.
func (e ScanEvent) OrderID() kernel.UUID { return e.orderID }

// ActorID returns who performed the scan.
func (e ScanEvent) ActorID() kernel.UUID { return e.actorID }

// ActorRole returns the scanning actor's role.
func (e ScanEvent) ActorRole() Role { return e.actorRole }

// Location returns where the scan happened, nil when the device had no fix.
func (e ScanEvent) Location() *kernel.GeoPoint { return e.location }

// OccurredAt returns when the scan happened.
func (e ScanEvent) OccurredAt() time.Time { return e.occurredAt }
