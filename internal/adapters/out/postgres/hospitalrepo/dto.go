// Package hospitalrepo provides data transfer objects and mapping functions
// for hospital persistence.
package hospitalrepo

import (
	"github.com/google/uuid"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/hospital"
	"medcourier/internal/core/domain/model/kernel"
)

// HospitalDTO represents the database structure for persisting hospital
// aggregates.
type HospitalDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Kind           int
	Location       GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	ApprovalStatus int
	Version        int
}

// TableName specifies the database table name for hospital entities.
func (HospitalDTO) TableName() string {
	return "hospitals"
}

// GeoPointDTO represents embedded coordinates within an owning table.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a hospital domain aggregate to its database representation.
func fromDomain(aggregate *hospital.Hospital) HospitalDTO {
	return HospitalDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Kind: int(aggregate.Kind()),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		ApprovalStatus: int(aggregate.ApprovalStatus()),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to a hospital aggregate using RestoreHospital.
func toDomain(dto HospitalDTO) (*hospital.Hospital, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return hospital.RestoreHospital(id, dto.Name, hospital.Kind(dto.Kind),
		location, approval.Status(dto.ApprovalStatus), dto.Version)
}
