package ports

import (
	"context"

	"medcourier/internal/core/domain/model/hospital"
	"medcourier/internal/core/domain/model/kernel"
)

// HospitalRepository defines the persistence contract for hospital aggregates.
type HospitalRepository interface {
	// Add persists a new hospital aggregate to storage.
	Add(ctx context.Context, aggregate *hospital.Hospital) error

	// Update persists changes to an existing hospital aggregate.
	// Fails with a state conflict when the stored version no longer matches.
	Update(ctx context.Context, aggregate *hospital.Hospital) error

	// Get retrieves a hospital aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*hospital.Hospital, error)
}
