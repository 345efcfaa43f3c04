package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var ErrCancelHandoverCommandIsNotConstructed = errors.New(
	"CancelHandoverCommand must be created via NewCancelHandoverCommand constructor",
)

// CancelHandoverCommand abandons a handover before confirmation. Custody
// reverts to the original rider. Cancellation is always an explicit,
// reasoned action.
type CancelHandoverCommand struct { //nolint:recvcheck //using for validation
	handoverID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelHandoverCommand creates a command to cancel a handover with a
// mandatory reason.
func NewCancelHandoverCommand(handoverID kernel.UUID, reason string) (CancelHandoverCommand, error) {
	command := CancelHandoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHandoverID(handoverID),
		command.setReason(reason),
	); err != nil {
		return CancelHandoverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelHandoverCommand) Validate() error {
	return c.guard.Validate(ErrCancelHandoverCommandIsNotConstructed)
}

// HandoverID returns the handover being cancelled.
func (c CancelHandoverCommand) HandoverID() kernel.UUID { return c.handoverID }

// Reason returns why the handover is being abandoned.
func (c CancelHandoverCommand) Reason() string { return c.reason }

func (c *CancelHandoverCommand) setHandoverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.handoverID = id
	return nil
}

func (c *CancelHandoverCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
