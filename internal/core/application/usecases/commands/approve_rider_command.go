package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var ErrApproveRiderCommandIsNotConstructed = errors.New(
	"ApproveRiderCommand must be created via NewApproveRiderCommand constructor",
)

// ApproveRiderCommand records an approval decision on one scope of a rider's
// approval record. A hospital scope is approved by passing the hospital's
// identifier; passing nil approves the HQ scope.
type ApproveRiderCommand struct { //nolint:recvcheck //using for validation
	riderID    kernel.UUID
	hospitalID *kernel.UUID
	approverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRiderCommand creates a command to approve a rider in one scope.
// A nil hospitalID targets the HQ scope.
func NewApproveRiderCommand(riderID kernel.UUID, hospitalID *kernel.UUID,
	approverID kernel.UUID) (ApproveRiderCommand, error) {
	command := ApproveRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setHospitalID(hospitalID),
		command.setApproverID(approverID),
	); err != nil {
		return ApproveRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRiderCommand) Validate() error {
	return c.guard.Validate(ErrApproveRiderCommandIsNotConstructed)
}

// RiderID returns the rider being approved.
func (c ApproveRiderCommand) RiderID() kernel.UUID { return c.riderID }

// HospitalID returns the hospital scope, nil for the HQ scope.
func (c ApproveRiderCommand) HospitalID() *kernel.UUID { return c.hospitalID }

// ApproverID returns the actor recording the decision.
func (c ApproveRiderCommand) ApproverID() kernel.UUID { return c.approverID }

func (c *ApproveRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}

func (c *ApproveRiderCommand) setHospitalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *ApproveRiderCommand) setApproverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.approverID = id
	return nil
}
