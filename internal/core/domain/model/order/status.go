package order

import (
	"fmt"

	"medcourier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with strictly monotonic transitions:
//
//	PendingRiderAssignment ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	            │                  │            │            │
//	            └──────────────────┴────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Skipping a state (for example a
// delivery scan while still PickedUp) is a state conflict that carries the
// current state so callers can decide to retry or abandon.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingRiderAssignment is the initial status: the order exists and
	// waits for a dispatcher to assign a rider.
	PendingRiderAssignment

	// Assigned indicates a rider has been assigned and is heading to the
	// collection center.
	Assigned

	// PickedUp indicates the sample was collected, confirmed by a pickup
	// QR scan at the center.
	PickedUp

	// InTransit indicates the rider departed the center toward the hospital.
	InTransit

	// Delivered indicates the sample reached the hospital, confirmed by a
	// delivery QR scan. Terminal.
	Delivered

	// Cancelled indicates the order was explicitly cancelled with a reason.
	// Reachable from any non-terminal state. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "Unknown",
		PendingRiderAssignment: "PendingRiderAssignment",
		Assigned:               "Assigned",
		PickedUp:               "PickedUp",
		InTransit:              "InTransit",
		Delivered:              "Delivered",
		Cancelled:              "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingRiderAssignment: "PendingRiderAssignment",
		Assigned:               "Assigned",
		PickedUp:               "PickedUp",
		InTransit:              "InTransit",
		Delivered:              "Delivered",
		Cancelled:              "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions to Assigned. Valid only from PendingRiderAssignment;
// there is no reassignment through Assign, mid-transit reassignment goes
// through a handover.
func (s Status) Assign() (Status, error) {
	if s != PendingRiderAssignment {
		return 0, errs.NewStateConflictError("order", "assign rider", s.String())
	}

	return Assigned, nil
}

// PickUp transitions to PickedUp on a valid pickup QR scan.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, errs.NewStateConflictError("order", "pick up", s.String())
	}

	return PickedUp, nil
}

// StartTransit transitions to InTransit when the rider departs the center.
func (s Status) StartTransit() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewStateConflictError("order", "start transit", s.String())
	}

	return InTransit, nil
}

// Deliver transitions to Delivered on a valid delivery QR scan.
// Only InTransit orders may be delivered; a scan that would skip a state is
// rejected rather than silently fast-forwarded.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewStateConflictError("order", "deliver", s.String())
	}

	return Delivered, nil
}

// Cancel transitions to Cancelled from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewStateConflictError("order", "cancel", s.String())
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
