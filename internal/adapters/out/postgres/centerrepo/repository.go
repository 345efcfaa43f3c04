package centerrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medcourier/internal/adapters/out/postgres/approvaldto"
	"medcourier/internal/core/domain/model/center"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
)

// GormCenterRepository implements CenterRepository using GORM.
type GormCenterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCenterRepository creates a new GORM center repository.
func NewGormCenterRepository(db *gorm.DB, tracker aggregateTracker) *GormCenterRepository {
	return &GormCenterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new center and its approval record to the database.
func (r *GormCenterRepository) Add(ctx context.Context, aggregate *center.Center) error {
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

// Update saves an existing center, guarded by the version column. Two
// authorities deciding on the same center concurrently resolve
// first-writer-wins; the loser gets a state conflict.
func (r *GormCenterRepository) Update(ctx context.Context, aggregate *center.Center) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).Model(&CenterDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictErrorWithCause("center", "update",
			fmt.Sprintf("version %d", aggregate.Version()),
			errors.New("stale aggregate version"))
	}

	if err := approvaldto.ReplaceForOwner(ctx, r.db, aggregate.ID(), aggregate.Approval()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a center by ID with its approval record.
func (r *GormCenterRepository) Get(ctx context.Context, id kernel.UUID) (*center.Center, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CenterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("center", id.String())
		}
		return nil, err
	}

	record, err := approvaldto.LoadForOwner(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, record)
}
