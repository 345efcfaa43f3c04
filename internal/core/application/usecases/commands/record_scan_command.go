package commands

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var ErrRecordScanCommandIsNotConstructed = errors.New(
	"RecordScanCommand must be created via NewRecordScanCommand constructor",
)

// RecordScanCommand ingests one QR scan from a device. The payload is the
// raw string read from the QR image; the location is optional because
// devices may lack a fix indoors.
type RecordScanCommand struct { //nolint:recvcheck //using for validation
	payload   string
	actorID   kernel.UUID
	actorRole qr.Role
	location  *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRecordScanCommand creates a command to record a QR scan.
func NewRecordScanCommand(payload string, actorID kernel.UUID, actorRole qr.Role,
	location *kernel.GeoPoint) (RecordScanCommand, error) {
	command := RecordScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPayload(payload),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
		command.setLocation(location),
	); err != nil {
		return RecordScanCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordScanCommandIsNotConstructed)
}

// Payload returns the raw scanned QR payload.
func (c RecordScanCommand) Payload() string { return c.payload }

// ActorID returns who performed the scan.
func (c RecordScanCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the scanning actor's role.
func (c RecordScanCommand) ActorRole() qr.Role { return c.actorRole }

// Location returns where the scan happened, nil when unknown.
func (c RecordScanCommand) Location() *kernel.GeoPoint { return c.location }

func (c *RecordScanCommand) setPayload(payload string) error {
	if payload == "" {
		return errs.NewValueIsRequiredError("payload")
	}
	c.payload = payload
	return nil
}

func (c *RecordScanCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *RecordScanCommand) setActorRole(role qr.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}

func (c *RecordScanCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
