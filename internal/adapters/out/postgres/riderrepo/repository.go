package riderrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medcourier/internal/adapters/out/postgres/approvaldto"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/rider"
	"medcourier/internal/pkg/errs"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider and its approval record to the database.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := approvaldto.ReplaceForOwner(ctx, r.db, aggregate.ID(), aggregate.Approval()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rider, guarded by the version column. The
// version check is what keeps two dispatchers from both marking the same
// rider busy.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).Model(&RiderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictErrorWithCause("rider", "update",
			fmt.Sprintf("version %d", aggregate.Version()),
			errors.New("stale aggregate version"))
	}

	if err := approvaldto.ReplaceForOwner(ctx, r.db, aggregate.ID(), aggregate.Approval()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rider by ID with its approval record.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	record, err := approvaldto.LoadForOwner(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, record)
}

// GetAllAvailable retrieves all riders currently free to take an order.
func (r *GormRiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "availability = ?", int(rider.Available)).Error; err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		record, err := approvaldto.LoadForOwner(ctx, r.db, id)
		if err != nil {
			return nil, err
		}
		aggregate, err := toDomain(dto, record)
		if err != nil {
			return nil, err
		}
		riders = append(riders, aggregate)
	}

	return riders, nil
}
