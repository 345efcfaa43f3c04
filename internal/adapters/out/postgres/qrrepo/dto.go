// Package qrrepo provides data transfer objects and mapping functions for
// issued QR codes and the append-only scan ledger.
package qrrepo

import (
	"time"

	"github.com/google/uuid"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/qr"
)

// CodeDTO represents the database structure for persisting issued QR codes.
type CodeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      int
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	PartyID   uuid.UUID `gorm:"type:uuid"`
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TableName specifies the database table name for QR codes.
func (CodeDTO) TableName() string {
	return "qr_codes"
}

// ScanEventDTO represents an authoritative ledger entry. The unique index on
// the code identifier is what makes scan ingestion idempotent: a second
// insert for the same code violates it and is diverted to the duplicate
// audit table.
type ScanEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	QRID       uuid.UUID `gorm:"column:qr_id;type:uuid;uniqueIndex"`
	Kind       int
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ActorRole  int
	Latitude   *float64
	Longitude  *float64
	OccurredAt time.Time
}

// TableName specifies the database table name for scan events.
func (ScanEventDTO) TableName() string {
	return "scan_events"
}

// DuplicateScanDTO represents a rejected duplicate attempt. Same shape as a
// scan event but without the uniqueness constraint.
type DuplicateScanDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	QRID       uuid.UUID `gorm:"column:qr_id;type:uuid;index"`
	Kind       int
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ActorRole  int
	Latitude   *float64
	Longitude  *float64
	OccurredAt time.Time
}

// TableName specifies the database table name for duplicate scan attempts.
func (DuplicateScanDTO) TableName() string {
	return "duplicate_scans"
}

// codeFromDomain converts a QR code to its database representation.
func codeFromDomain(code qr.Code) CodeDTO {
	return CodeDTO{
		ID:        code.ID().Bytes(),
		Kind:      int(code.Kind()),
		OrderID:   code.OrderID().Bytes(),
		PartyID:   code.PartyID().Bytes(),
		IssuedAt:  code.IssuedAt(),
		ExpiresAt: code.ExpiresAt(),
	}
}

// codeToDomain converts a database DTO to a QR code.
func codeToDomain(dto CodeDTO) (qr.Code, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return qr.Code{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return qr.Code{}, err
	}
	partyID, err := kernel.UUIDFromBytes(dto.PartyID[:])
	if err != nil {
		return qr.Code{}, err
	}

	return qr.NewCode(id, qr.Kind(dto.Kind), orderID, partyID, dto.IssuedAt, dto.ExpiresAt)
}

// scanFromDomain converts a scan event to its database representation.
func scanFromDomain(event qr.ScanEvent) ScanEventDTO {
	dto := ScanEventDTO{
		ID:         event.ID().Bytes(),
		QRID:       event.QRID().Bytes(),
		Kind:       int(event.Kind()),
		OrderID:    event.OrderID().Bytes(),
		ActorID:    event.ActorID().Bytes(),
		ActorRole:  int(event.ActorRole()),
		OccurredAt: event.OccurredAt(),
	}
	if location := event.Location(); location != nil {
		lat, lon := location.Latitude(), location.Longitude()
		dto.Latitude, dto.Longitude = &lat, &lon
	}
	return dto
}

// scanToDomain converts a database DTO to a scan event using RestoreScanEvent.
func scanToDomain(dto ScanEventDTO) (qr.ScanEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return qr.ScanEvent{}, err
	}
	qrID, err := kernel.UUIDFromBytes(dto.QRID[:])
	if err != nil {
		return qr.ScanEvent{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return qr.ScanEvent{}, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return qr.ScanEvent{}, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return qr.ScanEvent{}, pointErr
		}
		location = &point
	}

	return qr.RestoreScanEvent(id, qrID, qr.Kind(dto.Kind), orderID, actorID,
		qr.Role(dto.ActorRole), location, dto.OccurredAt), nil
}
