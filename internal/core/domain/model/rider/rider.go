// Package rider models delivery riders. A rider carries a per-hospital
// approval record and an availability state; assignment to an order requires
// both an approved scope for the target hospital and Available status, and
// marking the rider busy is the domain half of the atomic check-and-assign.
package rider

import (
	"errors"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
var ErrRiderIsNotConstructed = errors.New(
	"Rider must be created via NewRider or RestoreRider constructors")

// Rider is the aggregate root for a delivery rider.
type Rider struct {
	id           kernel.UUID
	name         string
	phone        string
	record       *approval.Record
	availability Availability
	version      int

	guard guard.ConstructorGuard
}

// NewRider creates a rider pending approval for the given hospitals, Offline
// until onboarding completes and the rider explicitly goes on shift.
func NewRider(id kernel.UUID, name, phone string, hospitalIDs ...kernel.UUID) (*Rider, error) {
	record, err := approval.NewRecord(hospitalIDs...)
	if err != nil {
		return nil, err
	}

	rider := &Rider{
		record:       record,
		availability: Offline,
		version:      1,
		guard:        guard.NewConstructorGuard(),
	}

	if err = errors.Join(
		rider.setID(id),
		rider.setName(name),
		rider.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return rider, nil
}

// RestoreRider reconstructs a rider from persistence.
func RestoreRider(
	id kernel.UUID, name, phone string,
	record *approval.Record, availability Availability, version int,
) (*Rider, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("rider version")
	}

	rider := &Rider{
		record:       record,
		availability: availability,
		version:      version,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setName(name),
		rider.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return rider, nil
}

// Validate ensures the rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact number.
func (r *Rider) Phone() string {
	return r.phone
}

// Approval returns the rider's scoped approval record.
func (r *Rider) Approval() *approval.Record {
	return r.record
}

// Availability returns the rider's current availability.
func (r *Rider) Availability() Availability {
	return r.availability
}

// Version returns the optimistic-lock version.
func (r *Rider) Version() int {
	return r.version
}

// IsApprovedFor reports whether the rider may deliver to the given hospital:
// that hospital's scope and the HQ scope must both be Approved. A hospital
// the rider never registered a scope for is simply not approved, so the
// caller surfaces it as an authorization failure, not a lookup error.
func (r *Rider) IsApprovedFor(hospitalID kernel.UUID) (bool, error) {
	effective, err := r.record.EffectiveStatusForHospital(hospitalID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	return effective == approval.Approved, nil
}

// MarkBusy takes the rider for a delivery. Fails with a state conflict
// ("rider unavailable") unless the rider is Available. Persisting the change
// under the version check makes the check-and-mark atomic.
func (r *Rider) MarkBusy() error {
	next, err := r.availability.MarkBusy()
	if err != nil {
		return err
	}

	r.availability = next
	return nil
}

// MarkAvailable releases the rider after a delivery completes, is cancelled,
// or is handed over, or brings an Offline rider on shift.
func (r *Rider) MarkAvailable() error {
	next, err := r.availability.MarkAvailable()
	if err != nil {
		return err
	}

	r.availability = next
	return nil
}

// MarkOffline takes an Available rider off shift.
func (r *Rider) MarkOffline() error {
	next, err := r.availability.MarkOffline()
	if err != nil {
		return err
	}

	r.availability = next
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = phone
	return nil
}
