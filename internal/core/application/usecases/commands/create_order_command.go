package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to move a sample from a collection
// center to a hospital under an urgency tier.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, centerID, hospitalID, order.Emergency)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	centerID   kernel.UUID
	hospitalID kernel.UUID
	urgency    order.Urgency

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sample order.
func NewCreateOrderCommand(orderID, centerID, hospitalID kernel.UUID,
	urgency order.Urgency) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCenterID(centerID),
		command.setHospitalID(hospitalID),
		command.setUrgency(urgency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CenterID returns the dispatching collection center.
func (c CreateOrderCommand) CenterID() kernel.UUID { return c.centerID }

// HospitalID returns the receiving hospital.
func (c CreateOrderCommand) HospitalID() kernel.UUID { return c.hospitalID }

// Urgency returns the order's urgency tier.
func (c CreateOrderCommand) Urgency() order.Urgency { return c.urgency }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.centerID = id
	return nil
}

func (c *CreateOrderCommand) setHospitalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *CreateOrderCommand) setUrgency(urgency order.Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	c.urgency = urgency
	return nil
}
