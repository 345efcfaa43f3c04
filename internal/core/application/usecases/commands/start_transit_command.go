package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand marks a picked-up order as en route to the hospital.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command to mark an order in transit.
func NewStartTransitCommand(orderID, riderID kernel.UUID) (StartTransitCommand, error) {
	command := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
	); err != nil {
		return StartTransitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// OrderID returns the order starting transit.
func (c StartTransitCommand) OrderID() kernel.UUID { return c.orderID }

// RiderID returns the rider reporting the transition.
func (c StartTransitCommand) RiderID() kernel.UUID { return c.riderID }

func (c *StartTransitCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *StartTransitCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}
