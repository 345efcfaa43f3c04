package handoverrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
)

// GormHandoverRepository implements HandoverRepository using GORM.
type GormHandoverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHandoverRepository creates a new GORM handover repository.
func NewGormHandoverRepository(db *gorm.DB, tracker aggregateTracker) *GormHandoverRepository {
	return &GormHandoverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new handover to the database.
func (r *GormHandoverRepository) Add(ctx context.Context, aggregate *handover.Handover) error {
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

// Update saves an existing handover, guarded by the version column. A stale
// write hits zero rows and surfaces as a state conflict so the caller sees
// the concurrent change instead of overwriting it.
func (r *GormHandoverRepository) Update(ctx context.Context, aggregate *handover.Handover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).Model(&HandoverDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictErrorWithCause("handover", "update",
			fmt.Sprintf("version %d", aggregate.Version()),
			errors.New("stale aggregate version"))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a handover by ID.
func (r *GormHandoverRepository) Get(ctx context.Context, id kernel.UUID) (*handover.Handover, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HandoverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("handover", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all handovers recorded for an order, oldest first.
func (r *GormHandoverRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*handover.Handover, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HandoverDTO
	if err := r.db.WithContext(ctx).
		Order("initiated_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	handovers := make([]*handover.Handover, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		handovers = append(handovers, h)
	}

	return handovers, nil
}
