package hospitalrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medcourier/internal/core/domain/model/hospital"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
)

// GormHospitalRepository implements HospitalRepository using GORM.
type GormHospitalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHospitalRepository creates a new GORM hospital repository.
func NewGormHospitalRepository(db *gorm.DB, tracker aggregateTracker) *GormHospitalRepository {
	return &GormHospitalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hospital to the database.
func (r *GormHospitalRepository) Add(ctx context.Context, aggregate *hospital.Hospital) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing hospital, guarded by the version column.
func (r *GormHospitalRepository) Update(ctx context.Context, aggregate *hospital.Hospital) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).Model(&HospitalDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictErrorWithCause("hospital", "update",
			fmt.Sprintf("version %d", aggregate.Version()),
			errors.New("stale aggregate version"))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a hospital by ID.
func (r *GormHospitalRepository) Get(ctx context.Context, id kernel.UUID) (*hospital.Hospital, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HospitalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hospital", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
