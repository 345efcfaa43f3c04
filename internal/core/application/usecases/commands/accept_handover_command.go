package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var ErrAcceptHandoverCommandIsNotConstructed = errors.New(
	"AcceptHandoverCommand must be created via NewAcceptHandoverCommand constructor",
)

// AcceptHandoverCommand records the relieving rider's agreement to take over
// a delivery.
type AcceptHandoverCommand struct { //nolint:recvcheck //using for validation
	handoverID kernel.UUID
	byRiderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptHandoverCommand creates a command to accept a handover.
func NewAcceptHandoverCommand(handoverID, byRiderID kernel.UUID) (AcceptHandoverCommand, error) {
	command := AcceptHandoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHandoverID(handoverID),
		command.setByRiderID(byRiderID),
	); err != nil {
		return AcceptHandoverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptHandoverCommand) Validate() error {
	return c.guard.Validate(ErrAcceptHandoverCommandIsNotConstructed)
}

// HandoverID returns the handover being accepted.
func (c AcceptHandoverCommand) HandoverID() kernel.UUID { return c.handoverID }

// ByRiderID returns the rider accepting; must be the designated relieving rider.
func (c AcceptHandoverCommand) ByRiderID() kernel.UUID { return c.byRiderID }

func (c *AcceptHandoverCommand) setHandoverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.handoverID = id
	return nil
}

func (c *AcceptHandoverCommand) setByRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.byRiderID = id
	return nil
}
