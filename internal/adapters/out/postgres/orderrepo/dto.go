// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Transition timestamps are nullable; the version column backs optimistic
// locking.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CenterID   uuid.UUID  `gorm:"type:uuid;index"`
	HospitalID uuid.UUID  `gorm:"type:uuid;index"`
	RiderID    *uuid.UUID `gorm:"type:uuid;index"`
	HandoverID *uuid.UUID `gorm:"type:uuid"`
	Urgency    int
	Status     int `gorm:"index"`

	CreatedAt    time.Time
	AssignedAt   *time.Time
	PickedUpAt   *time.Time
	InTransitAt  *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string

	PickupDistanceKm     float64
	RiderAToHandoverKm   float64
	RiderBFromHandoverKm float64
	ActualDistanceKm     float64

	Version int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CenterID:   aggregate.CenterID().Bytes(),
		HospitalID: aggregate.HospitalID().Bytes(),
		RiderID:    optionalUUID(aggregate.Rider()),
		HandoverID: optionalUUID(aggregate.Handover()),
		Urgency:    int(aggregate.Urgency()),
		Status:     int(aggregate.Status()),

		CreatedAt:    aggregate.CreatedAt(),
		AssignedAt:   aggregate.AssignedAt(),
		PickedUpAt:   aggregate.PickedUpAt(),
		InTransitAt:  aggregate.InTransitAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CancelledAt:  aggregate.CancelledAt(),
		CancelReason: aggregate.CancelReason(),

		PickupDistanceKm:     aggregate.PickupDistanceKm(),
		RiderAToHandoverKm:   aggregate.RiderAToHandoverKm(),
		RiderBFromHandoverKm: aggregate.RiderBFromHandoverKm(),
		ActualDistanceKm:     aggregate.ActualDistanceKm(),

		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	centerID, err := kernel.UUIDFromBytes(dto.CenterID[:])
	if err != nil {
		return nil, err
	}
	hospitalID, err := kernel.UUIDFromBytes(dto.HospitalID[:])
	if err != nil {
		return nil, err
	}
	riderID, err := optionalKernelUUID(dto.RiderID)
	if err != nil {
		return nil, err
	}
	handoverID, err := optionalKernelUUID(dto.HandoverID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:         id,
		CenterID:   centerID,
		HospitalID: hospitalID,
		Urgency:    order.Urgency(dto.Urgency),
		Status:     order.Status(dto.Status),
		RiderID:    riderID,
		HandoverID: handoverID,

		CreatedAt:    dto.CreatedAt,
		AssignedAt:   dto.AssignedAt,
		PickedUpAt:   dto.PickedUpAt,
		InTransitAt:  dto.InTransitAt,
		DeliveredAt:  dto.DeliveredAt,
		CancelledAt:  dto.CancelledAt,
		CancelReason: dto.CancelReason,

		PickupDistanceKm:     dto.PickupDistanceKm,
		RiderAToHandoverKm:   dto.RiderAToHandoverKm,
		RiderBFromHandoverKm: dto.RiderBFromHandoverKm,
		ActualDistanceKm:     dto.ActualDistanceKm,

		Version: dto.Version,
	})
}
