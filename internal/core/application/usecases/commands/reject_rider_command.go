package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var ErrRejectRiderCommandIsNotConstructed = errors.New(
	"RejectRiderCommand must be created via NewRejectRiderCommand constructor",
)

// RejectRiderCommand records a rejection on one scope of a rider's approval
// record. Every rejection carries a human-readable reason; a rejected scope
// may later be reopened by resubmission.
type RejectRiderCommand struct { //nolint:recvcheck //using for validation
	riderID    kernel.UUID
	hospitalID *kernel.UUID
	approverID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectRiderCommand creates a command to reject a rider in one scope.
// A nil hospitalID targets the HQ scope. The reason is mandatory.
func NewRejectRiderCommand(riderID kernel.UUID, hospitalID *kernel.UUID,
	approverID kernel.UUID, reason string) (RejectRiderCommand, error) {
	command := RejectRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setHospitalID(hospitalID),
		command.setApproverID(approverID),
		command.setReason(reason),
	); err != nil {
		return RejectRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRiderCommand) Validate() error {
	return c.guard.Validate(ErrRejectRiderCommandIsNotConstructed)
}

// RiderID returns the rider being rejected.
func (c RejectRiderCommand) RiderID() kernel.UUID { return c.riderID }

// HospitalID returns the hospital scope, nil for the HQ scope.
func (c RejectRiderCommand) HospitalID() *kernel.UUID { return c.hospitalID }

// ApproverID returns the actor recording the decision.
func (c RejectRiderCommand) ApproverID() kernel.UUID { return c.approverID }

// Reason returns the human-readable rejection reason.
func (c RejectRiderCommand) Reason() string { return c.reason }

func (c *RejectRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}

func (c *RejectRiderCommand) setHospitalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *RejectRiderCommand) setApproverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.approverID = id
	return nil
}

func (c *RejectRiderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
