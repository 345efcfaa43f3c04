package ports

import (
	"context"

	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
)

// HandoverRepository defines the persistence contract for handover
// aggregates.
type HandoverRepository interface {
	// Add persists a new handover aggregate to storage.
	Add(ctx context.Context, aggregate *handover.Handover) error

	// Update persists changes to an existing handover aggregate.
	// Fails with a state conflict when the stored version no longer matches.
	Update(ctx context.Context, aggregate *handover.Handover) error

	// Get retrieves a handover aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*handover.Handover, error)

	// GetByOrder retrieves every handover of an order, confirmed and
	// cancelled included, for custody attribution.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*handover.Handover, error)
}
