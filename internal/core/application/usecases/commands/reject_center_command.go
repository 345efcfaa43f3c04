package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var ErrRejectCenterCommandIsNotConstructed = errors.New(
	"RejectCenterCommand must be created via NewRejectCenterCommand constructor",
)

// RejectCenterCommand records a rejection on one scope of a center's
// approval record. Every rejection carries a human-readable reason; a
// rejected scope may later be reopened by resubmission.
type RejectCenterCommand struct { //nolint:recvcheck //using for validation
	centerID   kernel.UUID
	hospitalID *kernel.UUID
	approverID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectCenterCommand creates a command to reject a center in one scope.
// A nil hospitalID targets the HQ scope. The reason is mandatory.
func NewRejectCenterCommand(centerID kernel.UUID, hospitalID *kernel.UUID,
	approverID kernel.UUID, reason string) (RejectCenterCommand, error) {
	command := RejectCenterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCenterID(centerID),
		command.setHospitalID(hospitalID),
		command.setApproverID(approverID),
		command.setReason(reason),
	); err != nil {
		return RejectCenterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCenterCommand) Validate() error {
	return c.guard.Validate(ErrRejectCenterCommandIsNotConstructed)
}

// CenterID returns the center being rejected.
func (c RejectCenterCommand) CenterID() kernel.UUID { return c.centerID }

// HospitalID returns the hospital scope, nil for the HQ scope.
func (c RejectCenterCommand) HospitalID() *kernel.UUID { return c.hospitalID }

// ApproverID returns the actor recording the decision.
func (c RejectCenterCommand) ApproverID() kernel.UUID { return c.approverID }

// Reason returns the human-readable rejection reason.
func (c RejectCenterCommand) Reason() string { return c.reason }

func (c *RejectCenterCommand) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.centerID = id
	return nil
}

func (c *RejectCenterCommand) setHospitalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *RejectCenterCommand) setApproverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.approverID = id
	return nil
}

func (c *RejectCenterCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
