package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var (
	ErrCreateCenterCommandIsNotConstructed = errors.New(
		"CreateCenterCommand must be created via NewCreateCenterCommand constructor",
	)
	ErrCenterNameIsRequired = errors.New("center name is required")
	ErrHospitalIDsRequired  = errors.New("at least one serviced hospital is required")
)

// CreateCenterCommand registers a new collection center. The center starts
// pending in every listed hospital scope and in the HQ scope; it cannot
// dispatch samples until approved.
type CreateCenterCommand struct { //nolint:recvcheck //using for validation
	centerID    kernel.UUID
	name        string
	location    kernel.GeoPoint
	hospitalIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCenterCommand creates a command to register a collection center.
// Validates the identifier, name, location, and that at least one hospital
// scope is listed.
func NewCreateCenterCommand(centerID kernel.UUID, name string,
	location kernel.GeoPoint, hospitalIDs ...kernel.UUID) (CreateCenterCommand, error) {
	command := CreateCenterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCenterID(centerID),
		command.setName(name),
		command.setLocation(location),
		command.setHospitalIDs(hospitalIDs),
	); err != nil {
		return CreateCenterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCenterCommand) Validate() error {
	return c.guard.Validate(ErrCreateCenterCommandIsNotConstructed)
}

// CenterID returns the identifier for the new center.
func (c CreateCenterCommand) CenterID() kernel.UUID { return c.centerID }

// Name returns the center's display name.
func (c CreateCenterCommand) Name() string { return c.name }

// Location returns the center's coordinates.
func (c CreateCenterCommand) Location() kernel.GeoPoint { return c.location }

// HospitalIDs returns the hospitals the center intends to serve.
func (c CreateCenterCommand) HospitalIDs() []kernel.UUID { return c.hospitalIDs }

func (c *CreateCenterCommand) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.centerID = id
	return nil
}

func (c *CreateCenterCommand) setName(name string) error {
	if name == "" {
		return ErrCenterNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateCenterCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *CreateCenterCommand) setHospitalIDs(hospitalIDs []kernel.UUID) error {
	if len(hospitalIDs) == 0 {
		return ErrHospitalIDsRequired
	}
	for _, id := range hospitalIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.hospitalIDs = hospitalIDs
	return nil
}
