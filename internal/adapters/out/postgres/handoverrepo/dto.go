// Package handoverrepo provides data transfer objects and mapping functions
// for handover persistence.
package handoverrepo

import (
	"time"

	"github.com/google/uuid"

	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
)

// HandoverDTO represents the database structure for persisting handover
// aggregates.
type HandoverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	OriginalRiderID uuid.UUID `gorm:"type:uuid"`
	NewRiderID      uuid.UUID `gorm:"type:uuid"`
	Reason          string
	Point           GeoPointDTO `gorm:"embedded;embeddedPrefix:point_"`
	Status          int
	InitiatedAt     time.Time
	AcceptedAt      *time.Time
	ConfirmedAt     *time.Time
	CancelledAt     *time.Time
	CancelReason    string
	Version         int
}

// TableName specifies the database table name for handover entities.
func (HandoverDTO) TableName() string {
	return "handovers"
}

// GeoPointDTO represents embedded coordinates within an owning table.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a handover domain aggregate to its database representation.
func fromDomain(aggregate *handover.Handover) HandoverDTO {
	return HandoverDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		OriginalRiderID: aggregate.OriginalRiderID().Bytes(),
		NewRiderID:      aggregate.NewRiderID().Bytes(),
		Reason:          aggregate.Reason(),
		Point: GeoPointDTO{
			Latitude:  aggregate.Point().Latitude(),
			Longitude: aggregate.Point().Longitude(),
		},
		Status:       int(aggregate.Status()),
		InitiatedAt:  aggregate.InitiatedAt(),
		AcceptedAt:   aggregate.AcceptedAt(),
		ConfirmedAt:  aggregate.ConfirmedAt(),
		CancelledAt:  aggregate.CancelledAt(),
		CancelReason: aggregate.CancelReason(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to a handover aggregate using RestoreHandover.
func toDomain(dto HandoverDTO) (*handover.Handover, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	originalRiderID, err := kernel.UUIDFromBytes(dto.OriginalRiderID[:])
	if err != nil {
		return nil, err
	}
	newRiderID, err := kernel.UUIDFromBytes(dto.NewRiderID[:])
	if err != nil {
		return nil, err
	}
	point, err := kernel.NewGeoPoint(dto.Point.Latitude, dto.Point.Longitude)
	if err != nil {
		return nil, err
	}

	return handover.RestoreHandover(handover.RestoreHandoverParams{
		ID:              id,
		OrderID:         orderID,
		OriginalRiderID: originalRiderID,
		NewRiderID:      newRiderID,
		Reason:          dto.Reason,
		Point:           point,
		Status:          handover.Status(dto.Status),
		InitiatedAt:     dto.InitiatedAt,
		AcceptedAt:      dto.AcceptedAt,
		ConfirmedAt:     dto.ConfirmedAt,
		CancelledAt:     dto.CancelledAt,
		CancelReason:    dto.CancelReason,
		Version:         dto.Version,
	}), nil
}
