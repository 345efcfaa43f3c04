package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var ErrInitiateHandoverCommandIsNotConstructed = errors.New(
	"InitiateHandoverCommand must be created via NewInitiateHandoverCommand constructor",
)

// InitiateHandoverCommand requests a mid-route transfer of an order from its
// current rider to a relieving rider at an agreed point.
type InitiateHandoverCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	fromRiderID kernel.UUID
	toRiderID   kernel.UUID
	reason      string
	point       kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewInitiateHandoverCommand creates a command to initiate a handover.
// The reason is mandatory.
func NewInitiateHandoverCommand(orderID, fromRiderID, toRiderID kernel.UUID,
	reason string, point kernel.GeoPoint) (InitiateHandoverCommand, error) {
	command := InitiateHandoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setFromRiderID(fromRiderID),
		command.setToRiderID(toRiderID),
		command.setReason(reason),
		command.setPoint(point),
	); err != nil {
		return InitiateHandoverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiateHandoverCommand) Validate() error {
	return c.guard.Validate(ErrInitiateHandoverCommandIsNotConstructed)
}

// OrderID returns the order being transferred.
func (c InitiateHandoverCommand) OrderID() kernel.UUID { return c.orderID }

// FromRiderID returns the rider requesting relief.
func (c InitiateHandoverCommand) FromRiderID() kernel.UUID { return c.fromRiderID }

// ToRiderID returns the relieving rider.
func (c InitiateHandoverCommand) ToRiderID() kernel.UUID { return c.toRiderID }

// Reason returns why the handover is needed.
func (c InitiateHandoverCommand) Reason() string { return c.reason }

// Point returns the agreed handover location.
func (c InitiateHandoverCommand) Point() kernel.GeoPoint { return c.point }

func (c *InitiateHandoverCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *InitiateHandoverCommand) setFromRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.fromRiderID = id
	return nil
}

func (c *InitiateHandoverCommand) setToRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.toRiderID = id
	return nil
}

func (c *InitiateHandoverCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

func (c *InitiateHandoverCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}
