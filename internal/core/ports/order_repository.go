// Package ports defines repository interfaces for the sample courier domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Updates are version-checked: writing a stale aggregate fails with a state
// conflict instead of silently overwriting a concurrent change.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with a state conflict when the stored version no longer matches.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders in a non-terminal status.
	// Used by the SLA sweep and the dispatcher board.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
