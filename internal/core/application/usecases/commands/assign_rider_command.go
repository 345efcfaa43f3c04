package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand places a pending order on a specific rider chosen by
// the dispatcher.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to an order.
func NewAssignRiderCommand(orderID, riderID kernel.UUID) (AssignRiderCommand, error) {
	command := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order awaiting assignment.
func (c AssignRiderCommand) OrderID() kernel.UUID { return c.orderID }

// RiderID returns the rider chosen by the dispatcher.
func (c AssignRiderCommand) RiderID() kernel.UUID { return c.riderID }

func (c *AssignRiderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AssignRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}
