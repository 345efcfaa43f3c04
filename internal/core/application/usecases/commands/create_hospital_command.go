package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/hospital"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var ErrCreateHospitalCommandIsNotConstructed = errors.New(
	"CreateHospitalCommand must be created via NewCreateHospitalCommand constructor",
)

// CreateHospitalCommand registers a receiving hospital, the main facility or
// a regional one. The hospital starts with Pending onboarding status.
type CreateHospitalCommand struct { //nolint:recvcheck //using for validation
	hospitalID kernel.UUID
	name       string
	kind       hospital.Kind
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateHospitalCommand creates a command to register a hospital.
func NewCreateHospitalCommand(hospitalID kernel.UUID, name string,
	kind hospital.Kind, location kernel.GeoPoint) (CreateHospitalCommand, error) {
	command := CreateHospitalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHospitalID(hospitalID),
		command.setName(name),
		command.setKind(kind),
		command.setLocation(location),
	); err != nil {
		return CreateHospitalCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateHospitalCommand) Validate() error {
	return c.guard.Validate(ErrCreateHospitalCommandIsNotConstructed)
}

// HospitalID returns the identifier for the new hospital.
func (c CreateHospitalCommand) HospitalID() kernel.UUID { return c.hospitalID }

// Name returns the hospital's display name.
func (c CreateHospitalCommand) Name() string { return c.name }

// Kind returns Main or Regional.
func (c CreateHospitalCommand) Kind() hospital.Kind { return c.kind }

// Location returns the hospital's coordinates.
func (c CreateHospitalCommand) Location() kernel.GeoPoint { return c.location }

func (c *CreateHospitalCommand) setHospitalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *CreateHospitalCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateHospitalCommand) setKind(kind hospital.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateHospitalCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
