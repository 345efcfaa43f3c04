package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var ErrApproveCenterCommandIsNotConstructed = errors.New(
	"ApproveCenterCommand must be created via NewApproveCenterCommand constructor",
)

// ApproveCenterCommand records an approval decision on one scope of a
// center's approval record. A hospital scope is approved by passing the
// hospital's identifier; passing nil approves the HQ scope.
//
// Example:
//
//	cmd, err := NewApproveCenterCommand(centerID, &hospitalID, approverID)
//	if err != nil {
//	    return fmt.Errorf("invalid approval request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("approval failed: %w", err)
//	}
type ApproveCenterCommand struct { //nolint:recvcheck //using for validation
	centerID   kernel.UUID
	hospitalID *kernel.UUID
	approverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveCenterCommand creates a command to approve a center in one scope.
// A nil hospitalID targets the HQ scope.
func NewApproveCenterCommand(centerID kernel.UUID, hospitalID *kernel.UUID,
	approverID kernel.UUID) (ApproveCenterCommand, error) {
	command := ApproveCenterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCenterID(centerID),
		command.setHospitalID(hospitalID),
		command.setApproverID(approverID),
	); err != nil {
		return ApproveCenterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCenterCommand) Validate() error {
	return c.guard.Validate(ErrApproveCenterCommandIsNotConstructed)
}

// CenterID returns the center being approved.
func (c ApproveCenterCommand) CenterID() kernel.UUID { return c.centerID }

// HospitalID returns the hospital scope, nil for the HQ scope.
func (c ApproveCenterCommand) HospitalID() *kernel.UUID { return c.hospitalID }

// ApproverID returns the actor recording the decision.
func (c ApproveCenterCommand) ApproverID() kernel.UUID { return c.approverID }

func (c *ApproveCenterCommand) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.centerID = id
	return nil
}

func (c *ApproveCenterCommand) setHospitalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *ApproveCenterCommand) setApproverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.approverID = id
	return nil
}
