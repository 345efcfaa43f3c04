// Package qr models the QR codes issued per order and the immutable scan
// events they produce. Pickup and delivery codes are issued at order
// creation; a handover code is issued when a handover is initiated. An
// expired code can never produce a valid scan event.
package qr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrCodeIsNotConstructed is returned when using an improperly initialized Code.
var ErrCodeIsNotConstructed = errors.New(
	"Code must be created via NewCode constructor")

// Kind distinguishes what a QR code confirms.
type Kind int

const (
	// UnknownKind represents an invalid code kind.
	UnknownKind Kind = iota

	// Pickup confirms sample collection at the center.
	Pickup

	// Delivery confirms arrival at the hospital.
	Delivery

	// Handover confirms the physical exchange between two riders.
	Handover
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Pickup:      "pickup",
		Delivery:    "delivery",
		Handover:    "handover",
	}
}

// Validate checks if the kind is Pickup, Delivery, or Handover.
func (k Kind) Validate() error {
	switch k {
	case Pickup, Delivery, Handover:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("qr kind",
			fmt.Errorf("%d is not a valid kind", k))
	}
}

// String returns the wire name of the kind ("pickup", "delivery", "handover").
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// KindFromString parses a kind from its wire name.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	case "handover":
		return Handover, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause("qr kind",
			fmt.Errorf("%q is not a valid kind", s))
	}
}

// Code is a QR code bound to one order and one party (the center for pickup,
// the hospital for delivery, the handover point for handover). Immutable
// after issue; validity is bounded by the expiry timestamp.
type Code struct {
	id        kernel.UUID
	kind      Kind
	orderID   kernel.UUID
	partyID   kernel.UUID
	issuedAt  time.Time
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewCode issues a QR code. The expiry must be after the issue time.
func NewCode(id kernel.UUID, kind Kind, orderID, partyID kernel.UUID, issuedAt, expiresAt time.Time) (Code, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		orderID.Validate(),
		partyID.Validate(),
	); err != nil {
		return Code{}, err
	}
	if issuedAt.IsZero() {
		return Code{}, errs.NewValueIsRequiredError("issuedAt")
	}
	if !expiresAt.After(issuedAt) {
		return Code{}, errs.NewValueIsInvalidError("expiry must be after issue time")
	}

	return Code{
		id:        id,
		kind:      kind,
		orderID:   orderID,
		partyID:   partyID,
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the code was created through the constructor.
func (c Code) Validate() error {
	return c.guard.Validate(ErrCodeIsNotConstructed)
}

// ID returns the code's unique identifier.
func (c Code) ID() kernel.UUID { return c.id }

// Kind returns what the code confirms.
func (c Code) Kind() Kind { return c.kind }

// OrderID returns the bound order.
func (c Code) OrderID() kernel.UUID { return c.orderID }

// PartyID returns the bound party: center, hospital, or handover point.
func (c Code) PartyID() kernel.UUID { return c.partyID }

// IssuedAt returns the issue timestamp.
func (c Code) IssuedAt() time.Time { return c.issuedAt }

// ExpiresAt returns the expiry timestamp.
func (c Code) ExpiresAt() time.Time { return c.expiresAt }

// IsExpiredAt reports whether the code is past expiry at the given instant.
// Expiry is detected by timestamp comparison, never by background mutation.
func (c Code) IsExpiredAt(t time.Time) bool {
	return t.After(c.expiresAt)
}

// EncodePayload renders the string embedded in the printed QR image.
// The format is "medcourier:<kind>:<orderID>:<qrID>".
func (c Code) EncodePayload() string {
	return fmt.Sprintf("medcourier:%s:%s:%s", c.kind, c.orderID, c.id)
}

// DecodePayload parses a scanned payload back into its kind, order ID, and
// QR ID. Malformed payloads are rejected before reaching the state machine.
func DecodePayload(payload string) (Kind, kernel.UUID, kernel.UUID, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 4 || parts[0] != "medcourier" {
		return UnknownKind, kernel.UUID{}, kernel.UUID{},
			errs.NewValueIsInvalidError("qr payload")
	}

	kind, err := KindFromString(parts[1])
	if err != nil {
		return UnknownKind, kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(parts[2])
	if err != nil {
		return UnknownKind, kernel.UUID{}, kernel.UUID{},
			errs.NewValueIsInvalidErrorWithCause("qr payload order id", err)
	}

	qrID, err := kernel.UUIDFromString(parts[3])
	if err != nil {
		return UnknownKind, kernel.UUID{}, kernel.UUID{},
			errs.NewValueIsInvalidErrorWithCause("qr payload qr id", err)
	}

	return kind, orderID, qrID, nil
}
