// Package centerrepo provides data transfer objects and mapping functions
// for collection center persistence, including the center's multi-party
// approval record.
package centerrepo

import (
	"github.com/google/uuid"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/center"
	"medcourier/internal/core/domain/model/kernel"
)

// CenterDTO represents the database structure for persisting center
// aggregates. The approval record lives in the shared approval tables keyed
// by center id.
type CenterDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Location GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Version  int
}

// TableName specifies the database table name for center entities.
func (CenterDTO) TableName() string {
	return "centers"
}

// GeoPointDTO represents embedded coordinates within an owning table.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a center domain aggregate to its database representation.
func fromDomain(aggregate *center.Center) CenterDTO {
	return CenterDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO and its approval record to a center
// aggregate using RestoreCenter.
func toDomain(dto CenterDTO, record *approval.Record) (*center.Center, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return center.RestoreCenter(id, dto.Name, location, record, dto.Version)
}
