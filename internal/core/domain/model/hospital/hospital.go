// Package hospital models receiving hospitals: the main facility and the
// regional hospitals that collection centers dispatch samples to. A
// hospital's own approval status affects onboarding only, never orders.
package hospital

import (
	"errors"
	"fmt"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrHospitalIsNotConstructed is returned when using an improperly initialized Hospital.
var ErrHospitalIsNotConstructed = errors.New(
	"Hospital must be created via NewHospital or RestoreHospital constructors")

// Kind distinguishes the main facility from regional hospitals.
type Kind int

const (
	// UnknownKind represents an invalid hospital kind.
	UnknownKind Kind = iota
	// Main is the headquarters facility.
	Main
	// Regional is a regional receiving hospital.
	Regional
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Main:
		return "Main"
	case Regional:
		return "Regional"
	default:
		return "Unknown"
	}
}

// KindFromString parses a kind from its wire name.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "main":
		return Main, nil
	case "regional":
		return Regional, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause("hospital kind",
			fmt.Errorf("%q is not a valid kind", s))
	}
}

// Validate checks that the kind is Main or Regional.
func (k Kind) Validate() error {
	if k != Main && k != Regional {
		return errs.NewValueIsInvalidErrorWithCause("hospital kind",
			fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// Hospital is an aggregate root for a receiving facility.
type Hospital struct {
	id             kernel.UUID
	name           string
	kind           Kind
	location       kernel.GeoPoint
	approvalStatus approval.Status
	version        int

	guard guard.ConstructorGuard
}

// NewHospital creates a hospital in Pending onboarding status.
func NewHospital(id kernel.UUID, name string, kind Kind, location kernel.GeoPoint) (*Hospital, error) {
	hospital := &Hospital{
		approvalStatus: approval.Pending,
		version:        1,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		hospital.setID(id),
		hospital.setName(name),
		hospital.setKind(kind),
		hospital.setLocation(location),
	); err != nil {
		return nil, err
	}

	return hospital, nil
}

// RestoreHospital reconstructs a hospital from persistence.
func RestoreHospital(
	id kernel.UUID, name string, kind Kind, location kernel.GeoPoint,
	approvalStatus approval.Status, version int,
) (*Hospital, error) {
	hospital, err := NewHospital(id, name, kind, location)
	if err != nil {
		return nil, err
	}
	if err = approvalStatus.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("hospital version")
	}

	hospital.approvalStatus = approvalStatus
	hospital.version = version
	return hospital, nil
}

// Validate ensures the hospital was created through a constructor.
func (h *Hospital) Validate() error {
	if h == nil {
		return ErrHospitalIsNotConstructed
	}
	return h.guard.Validate(ErrHospitalIsNotConstructed)
}

// ID returns the hospital's unique identifier.
func (h *Hospital) ID() kernel.UUID {
	return h.id
}

// Name returns the hospital's display name.
func (h *Hospital) Name() string {
	return h.name
}

// Kind returns Main or Regional.
func (h *Hospital) Kind() Kind {
	return h.kind
}

// Location returns the hospital's position.
func (h *Hospital) Location() kernel.GeoPoint {
	return h.location
}

// ApprovalStatus returns the onboarding approval status.
func (h *Hospital) ApprovalStatus() approval.Status {
	return h.approvalStatus
}

// Version returns the optimistic-lock version.
func (h *Hospital) Version() int {
	return h.version
}

// Approve marks the hospital's onboarding as approved.
// Only a Pending hospital may be approved.
func (h *Hospital) Approve() error {
	next, err := h.approvalStatus.Approve()
	if err != nil {
		return err
	}

	h.approvalStatus = next
	return nil
}

// Reject declines the hospital's onboarding with a mandatory reason.
func (h *Hospital) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	next, err := h.approvalStatus.Reject()
	if err != nil {
		return err
	}

	h.approvalStatus = next
	return nil
}

func (h *Hospital) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Hospital) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	h.name = name
	return nil
}

func (h *Hospital) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	h.kind = kind
	return nil
}

func (h *Hospital) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	h.location = location
	return nil
}
