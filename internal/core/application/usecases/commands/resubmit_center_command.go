package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var ErrResubmitCenterCommandIsNotConstructed = errors.New(
	"ResubmitCenterCommand must be created via NewResubmitCenterCommand constructor",
)

// ResubmitCenterCommand reopens a rejected scope of a center's approval
// record back to pending. The prior rejection stays in the append-only
// decision history.
type ResubmitCenterCommand struct { //nolint:recvcheck //using for validation
	centerID   kernel.UUID
	hospitalID *kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewResubmitCenterCommand creates a command to resubmit a center for
// approval in one scope. A nil hospitalID targets the HQ scope.
func NewResubmitCenterCommand(centerID kernel.UUID, hospitalID *kernel.UUID,
	actorID kernel.UUID) (ResubmitCenterCommand, error) {
	command := ResubmitCenterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCenterID(centerID),
		command.setHospitalID(hospitalID),
		command.setActorID(actorID),
	); err != nil {
		return ResubmitCenterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResubmitCenterCommand) Validate() error {
	return c.guard.Validate(ErrResubmitCenterCommandIsNotConstructed)
}

// CenterID returns the center being resubmitted.
func (c ResubmitCenterCommand) CenterID() kernel.UUID { return c.centerID }

// HospitalID returns the hospital scope, nil for the HQ scope.
func (c ResubmitCenterCommand) HospitalID() *kernel.UUID { return c.hospitalID }

// ActorID returns who requested the resubmission.
func (c ResubmitCenterCommand) ActorID() kernel.UUID { return c.actorID }

func (c *ResubmitCenterCommand) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.centerID = id
	return nil
}

func (c *ResubmitCenterCommand) setHospitalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *ResubmitCenterCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
