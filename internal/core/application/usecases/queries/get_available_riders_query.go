package queries

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/guard"
)

var (
	ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
		"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
	)
)

// GetAvailableRidersQuery retrieves every rider currently free to take an
// order. Dispatchers use it to pick a rider when automatic assignment finds
// no candidate.
type GetAvailableRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates a query to retrieve all available riders.
func NewGetAvailableRidersQuery() GetAvailableRidersQuery {
	return GetAvailableRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableRidersQueryIsNotConstructed if validation fails.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// GetAvailableRidersQueryResponse represents one available rider.
type GetAvailableRidersQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Phone string
}
