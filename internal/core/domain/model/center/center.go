// Package center models collection centers: the facilities that draw samples
// and hand them to riders for delivery to receiving hospitals. A center
// carries a scoped approval record (one scope per receiving hospital plus an
// independent HQ scope) and may only dispatch to a hospital once both that
// hospital and HQ have signed off.
package center

import (
	"errors"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrCenterIsNotConstructed is returned when using an improperly initialized Center.
var ErrCenterIsNotConstructed = errors.New(
	"Center must be created via NewCenter or RestoreCenter constructors")

// Center is the aggregate root for a collection center.
// Approval behavior is delegated to the embedded approval.Record; the center
// adds the dispatch gate on top of it.
type Center struct {
	id       kernel.UUID
	name     string
	location kernel.GeoPoint
	record   *approval.Record
	version  int

	guard guard.ConstructorGuard
}

// NewCenter creates a collection center pending approval for the given
// receiving hospitals and for HQ.
func NewCenter(id kernel.UUID, name string, location kernel.GeoPoint, hospitalIDs ...kernel.UUID) (*Center, error) {
	record, err := approval.NewRecord(hospitalIDs...)
	if err != nil {
		return nil, err
	}

	center := &Center{
		record:  record,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err = errors.Join(
		center.setID(id),
		center.setName(name),
		center.setLocation(location),
	); err != nil {
		return nil, err
	}

	return center, nil
}

// RestoreCenter reconstructs a center from persistence.
func RestoreCenter(
	id kernel.UUID, name string, location kernel.GeoPoint,
	record *approval.Record, version int,
) (*Center, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("center version")
	}

	center := &Center{
		record:  record,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		center.setID(id),
		center.setName(name),
		center.setLocation(location),
	); err != nil {
		return nil, err
	}

	return center, nil
}

// Validate ensures the center was created through a constructor.
func (c *Center) Validate() error {
	if c == nil {
		return ErrCenterIsNotConstructed
	}
	return c.guard.Validate(ErrCenterIsNotConstructed)
}

// ID returns the center's unique identifier.
func (c *Center) ID() kernel.UUID {
	return c.id
}

// Name returns the center's display name.
func (c *Center) Name() string {
	return c.name
}

// Location returns the center's position.
func (c *Center) Location() kernel.GeoPoint {
	return c.location
}

// Approval returns the center's scoped approval record.
func (c *Center) Approval() *approval.Record {
	return c.record
}

// Version returns the optimistic-lock version.
func (c *Center) Version() int {
	return c.version
}

// MayDispatchTo reports whether the center is cleared to send samples to the
// given hospital: that hospital's scope and the HQ scope must both be Approved.
func (c *Center) MayDispatchTo(hospitalID kernel.UUID) (bool, error) {
	effective, err := c.record.EffectiveStatusForHospital(hospitalID)
	if err != nil {
		return false, err
	}

	return effective == approval.Approved, nil
}

func (c *Center) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Center) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Center) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
