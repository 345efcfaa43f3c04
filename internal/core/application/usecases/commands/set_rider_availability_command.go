package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/rider"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand puts a rider on or off shift. Only Available
// and Offline may be requested; Busy is entered exclusively through
// assignment, and a Busy rider must finish or hand over the delivery before
// going off shift.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID      kernel.UUID
	availability rider.Availability

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand creates a command to change a rider's
// availability to Available or Offline.
func NewSetRiderAvailabilityCommand(riderID kernel.UUID,
	availability rider.Availability) (SetRiderAvailabilityCommand, error) {
	command := SetRiderAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setAvailability(availability),
	); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the rider whose availability changes.
func (c SetRiderAvailabilityCommand) RiderID() kernel.UUID { return c.riderID }

// Availability returns the requested availability.
func (c SetRiderAvailabilityCommand) Availability() rider.Availability {
	return c.availability
}

func (c *SetRiderAvailabilityCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}

func (c *SetRiderAvailabilityCommand) setAvailability(availability rider.Availability) error {
	if availability != rider.Available && availability != rider.Offline {
		return errs.NewValueIsInvalidError("availability")
	}
	c.availability = availability
	return nil
}
