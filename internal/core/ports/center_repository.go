package ports

import (
	"context"

	"medcourier/internal/core/domain/model/center"
	"medcourier/internal/core/domain/model/kernel"
)

// CenterRepository defines the persistence contract for collection center
// aggregates and their multi-party approval record.
type CenterRepository interface {
	// Add persists a new center aggregate to storage.
	Add(ctx context.Context, aggregate *center.Center) error

	// Update persists changes to an existing center aggregate.
	// Fails with a state conflict when the stored version no longer matches;
	// concurrent approve and reject on the same scope resolve first-writer-wins.
	Update(ctx context.Context, aggregate *center.Center) error

	// Get retrieves a center aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*center.Center, error)
}
