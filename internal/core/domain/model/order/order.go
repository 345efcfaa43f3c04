package order

import (
	"errors"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New(
	"Order must be created via NewOrder or RestoreOrder constructors")

// Order represents a sample delivery order. It is the aggregate root driving
// the lifecycle from creation to delivery.
//
// Order follows these invariants:
//   - Status transitions are strictly monotonic along the lifecycle DAG;
//     Cancelled is reachable from any non-terminal state.
//   - Every transition stamps its timestamp exactly once.
//   - A rider is present from Assigned onward; mid-transit reassignment only
//     happens through a confirmed handover.
//   - With a confirmed handover, actual distance equals pickup distance plus
//     the two handover split legs.
//   - Terminal orders are never physically deleted.
type Order struct {
	id         kernel.UUID
	centerID   kernel.UUID
	hospitalID kernel.UUID
	urgency    Urgency

	riderID    *kernel.UUID
	handoverID *kernel.UUID
	status     Status

	createdAt    time.Time
	assignedAt   *time.Time
	pickedUpAt   *time.Time
	inTransitAt  *time.Time
	deliveredAt  *time.Time
	cancelledAt  *time.Time
	cancelReason string

	pickupDistanceKm     float64
	riderAToHandoverKm   float64
	riderBFromHandoverKm float64
	actualDistanceKm     float64

	version int

	guard guard.ConstructorGuard
}

// NewOrder creates an order in PendingRiderAssignment status.
// The pickup distance is the routed center-to-hospital distance supplied by
// the mapping collaborator at creation time.
func NewOrder(
	id, centerID, hospitalID kernel.UUID,
	urgency Urgency, pickupDistanceKm float64, createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:  PendingRiderAssignment,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCenterID(centerID),
		o.setHospitalID(hospitalID),
		o.setUrgency(urgency),
		o.setPickupDistance(pickupDistanceKm),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID         kernel.UUID
	CenterID   kernel.UUID
	HospitalID kernel.UUID
	Urgency    Urgency
	Status     Status

	RiderID    *kernel.UUID
	HandoverID *kernel.UUID

	CreatedAt    time.Time
	AssignedAt   *time.Time
	PickedUpAt   *time.Time
	InTransitAt  *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string

	PickupDistanceKm     float64
	RiderAToHandoverKm   float64
	RiderBFromHandoverKm float64
	ActualDistanceKm     float64

	Version int
}

// RestoreOrder reconstructs an order aggregate from persistence.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(params.ID, params.CenterID, params.HospitalID,
		params.Urgency, params.PickupDistanceKm, params.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = params.Status.Validate(); err != nil {
		return nil, err
	}
	if params.Version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}
	if params.RiderID != nil {
		if err = params.RiderID.Validate(); err != nil {
			return nil, err
		}
	}
	if params.RiderID == nil && params.Status != PendingRiderAssignment && params.Status != Cancelled {
		return nil, errs.NewValueIsInvalidError("order without rider past assignment")
	}

	o.status = params.Status
	o.riderID = params.RiderID
	o.handoverID = params.HandoverID
	o.assignedAt = params.AssignedAt
	o.pickedUpAt = params.PickedUpAt
	o.inTransitAt = params.InTransitAt
	o.deliveredAt = params.DeliveredAt
	o.cancelledAt = params.CancelledAt
	o.cancelReason = params.CancelReason
	o.riderAToHandoverKm = params.RiderAToHandoverKm
	o.riderBFromHandoverKm = params.RiderBFromHandoverKm
	o.actualDistanceKm = params.ActualDistanceKm
	o.version = params.Version
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CenterID returns the originating collection center.
func (o *Order) CenterID() kernel.UUID { return o.centerID }

// HospitalID returns the receiving hospital.
func (o *Order) HospitalID() kernel.UUID { return o.hospitalID }

// Urgency returns the clinical priority tier.
func (o *Order) Urgency() Urgency { return o.urgency }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Rider returns the currently responsible rider, nil before assignment.
func (o *Order) Rider() *kernel.UUID { return o.riderID }

// Handover returns the latest handover reference, nil if none occurred.
func (o *Order) Handover() *kernel.UUID { return o.handoverID }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AssignedAt returns the rider assignment timestamp, nil until assigned.
func (o *Order) AssignedAt() *time.Time { return o.assignedAt }

// PickedUpAt returns the pickup scan timestamp, nil until picked up.
func (o *Order) PickedUpAt() *time.Time { return o.pickedUpAt }

// InTransitAt returns the departure timestamp, nil until in transit.
func (o *Order) InTransitAt() *time.Time { return o.inTransitAt }

// DeliveredAt returns the delivery scan timestamp, nil until delivered.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancelledAt returns the cancellation timestamp, nil unless cancelled.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// CancelReason returns the human-readable cancellation reason.
func (o *Order) CancelReason() string { return o.cancelReason }

// PickupDistanceKm returns the routed center-to-hospital distance.
func (o *Order) PickupDistanceKm() float64 { return o.pickupDistanceKm }

// RiderAToHandoverKm returns the original rider's leg up to the handover point.
func (o *Order) RiderAToHandoverKm() float64 { return o.riderAToHandoverKm }

// RiderBFromHandoverKm returns the new rider's leg from the handover point.
func (o *Order) RiderBFromHandoverKm() float64 { return o.riderBFromHandoverKm }

// ActualDistanceKm returns the total travelled distance once known.
func (o *Order) ActualDistanceKm() float64 { return o.actualDistanceKm }

// Version returns the optimistic-lock version.
func (o *Order) Version() int { return o.version }

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// AssignRider assigns the order to a rider and stamps the assignment time.
// The caller is responsible for checking rider approval and atomically
// marking the rider busy within the same transaction.
func (o *Order) AssignRider(riderID kernel.UUID, at time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("assignment time")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	o.assignedAt = &at
	return nil
}

// MarkPickedUp records the pickup confirmed by a valid pickup QR scan.
func (o *Order) MarkPickedUp(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("pickup time")
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickedUpAt = &at
	return nil
}

// StartTransit records the rider's departure from the collection center.
func (o *Order) StartTransit(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("transit start time")
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.inTransitAt = &at
	return nil
}

// MarkDelivered records the delivery confirmed by a valid delivery QR scan.
// Without a handover the actual travelled distance is the pickup route.
func (o *Order) MarkDelivered(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	if o.actualDistanceKm == 0 {
		o.actualDistanceKm = o.pickupDistanceKm
	}
	return nil
}

// Cancel cancels the order with a mandatory reason. Valid from any
// non-terminal state; cancellation is always an explicit, reasoned action.
func (o *Order) Cancel(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("cancellation time")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = &at
	o.cancelReason = reason
	return nil
}

// AttachHandover links the order's active handover. Only one handover may be
// active at a time; attaching over an existing link is a state conflict.
func (o *Order) AttachHandover(handoverID kernel.UUID) error {
	if err := handoverID.Validate(); err != nil {
		return err
	}
	if o.handoverID != nil {
		return errs.NewStateConflictError("order", "attach handover", o.status.String())
	}
	if o.status != PickedUp && o.status != InTransit {
		return errs.NewStateConflictError("order", "attach handover", o.status.String())
	}

	o.handoverID = &handoverID
	return nil
}

// DetachHandover clears the active handover link after the handover is
// cancelled. Custody stays with the original rider.
func (o *Order) DetachHandover() {
	o.handoverID = nil
}

// ApplyHandoverSplit reassigns custody to the new rider at handover
// confirmation and records the split distance attribution:
// actual = pickup + rider A's leg to the handover point + rider B's leg from it.
func (o *Order) ApplyHandoverSplit(newRiderID kernel.UUID, riderAKm, riderBKm float64) error {
	if err := newRiderID.Validate(); err != nil {
		return err
	}
	if o.handoverID == nil {
		return errs.NewStateConflictError("order", "apply handover split", o.status.String())
	}
	if riderAKm < 0 || riderBKm < 0 {
		return errs.NewValueIsInvalidError("handover split distance")
	}

	o.riderID = &newRiderID
	o.riderAToHandoverKm = riderAKm
	o.riderBFromHandoverKm = riderBKm
	o.actualDistanceKm = o.pickupDistanceKm + riderAKm + riderBKm
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.centerID = id
	return nil
}

func (o *Order) setHospitalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.hospitalID = id
	return nil
}

func (o *Order) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	o.urgency = urgency
	return nil
}

func (o *Order) setPickupDistance(km float64) error {
	if km < 0 {
		return errs.NewValueIsInvalidError("pickup distance")
	}
	o.pickupDistanceKm = km
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("creation time")
	}
	o.createdAt = at
	return nil
}
