package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var ErrResubmitRiderCommandIsNotConstructed = errors.New(
	"ResubmitRiderCommand must be created via NewResubmitRiderCommand constructor",
)

// ResubmitRiderCommand reopens a rejected scope of a rider's approval record
// back to pending. The prior rejection stays in the append-only decision
// history.
type ResubmitRiderCommand struct { //nolint:recvcheck //using for validation
	riderID    kernel.UUID
	hospitalID *kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewResubmitRiderCommand creates a command to resubmit a rider for approval
// in one scope. A nil hospitalID targets the HQ scope.
func NewResubmitRiderCommand(riderID kernel.UUID, hospitalID *kernel.UUID,
	actorID kernel.UUID) (ResubmitRiderCommand, error) {
	command := ResubmitRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setHospitalID(hospitalID),
		command.setActorID(actorID),
	); err != nil {
		return ResubmitRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResubmitRiderCommand) Validate() error {
	return c.guard.Validate(ErrResubmitRiderCommandIsNotConstructed)
}

// RiderID returns the rider being resubmitted.
func (c ResubmitRiderCommand) RiderID() kernel.UUID { return c.riderID }

// HospitalID returns the hospital scope, nil for the HQ scope.
func (c ResubmitRiderCommand) HospitalID() *kernel.UUID { return c.hospitalID }

// ActorID returns who requested the resubmission.
func (c ResubmitRiderCommand) ActorID() kernel.UUID { return c.actorID }

func (c *ResubmitRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}

func (c *ResubmitRiderCommand) setHospitalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *ResubmitRiderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
