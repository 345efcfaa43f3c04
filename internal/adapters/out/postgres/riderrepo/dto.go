// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence, including the rider's approval record.
package riderrepo

import (
	"github.com/google/uuid"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The approval record lives in the shared approval tables keyed by rider id.
type RiderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	Availability int `gorm:"index"`
	Version      int
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		Availability: int(aggregate.Availability()),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO and its approval record to a rider
// aggregate using RestoreRider.
func toDomain(dto RiderDTO, record *approval.Record) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, dto.Phone, record,
		rider.Availability(dto.Availability), dto.Version)
}
