package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrRiderHospitalIDsRequired = errors.New("at least one hospital scope is required")
)

// CreateRiderCommand onboards a new delivery rider. The rider starts pending
// in every listed hospital scope and in the HQ scope, and Offline; it cannot
// be assigned orders until approved and on shift.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID     kernel.UUID
	name        string
	phone       string
	hospitalIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to onboard a rider. Validates the
// identifier, name, phone, and that at least one hospital scope is listed.
func NewCreateRiderCommand(riderID kernel.UUID, name, phone string,
	hospitalIDs ...kernel.UUID) (CreateRiderCommand, error) {
	command := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setName(name),
		command.setPhone(phone),
		command.setHospitalIDs(hospitalIDs),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new rider.
func (c CreateRiderCommand) RiderID() kernel.UUID { return c.riderID }

// Name returns the rider's display name.
func (c CreateRiderCommand) Name() string { return c.name }

// Phone returns the rider's contact number.
func (c CreateRiderCommand) Phone() string { return c.phone }

// HospitalIDs returns the hospitals the rider intends to deliver to.
func (c CreateRiderCommand) HospitalIDs() []kernel.UUID { return c.hospitalIDs }

func (c *CreateRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateRiderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateRiderCommand) setHospitalIDs(hospitalIDs []kernel.UUID) error {
	if len(hospitalIDs) == 0 {
		return ErrRiderHospitalIDsRequired
	}
	for _, id := range hospitalIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.hospitalIDs = hospitalIDs
	return nil
}
