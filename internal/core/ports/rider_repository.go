package ports

import (
	"context"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates,
// including their approval record and availability.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	// Fails with a state conflict when the stored version no longer matches,
	// so two dispatchers cannot both mark the same rider busy.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllAvailable retrieves all riders currently free to take an order.
	GetAllAvailable(ctx context.Context) ([]*rider.Rider, error)
}
