package queries

import (
	"context"

	"medcourier/internal/core/ports"
)

// GetAvailableRidersQueryHandler lists riders free to take a delivery. Reads
// through the rider repository so the availability rules live in one place.
type GetAvailableRidersQueryHandler struct {
	riderRepo ports.RiderRepository
}

// NewGetAvailableRidersQueryHandler creates a handler for available rider queries.
func NewGetAvailableRidersQueryHandler(
	riderRepo ports.RiderRepository) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{riderRepo: riderRepo}
}

// Handle retrieves all riders whose availability is Available.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]GetAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders, err := h.riderRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetAvailableRidersQueryResponse, 0, len(riders))
	for _, r := range riders {
		responses = append(responses, GetAvailableRidersQueryResponse{
			ID:    r.ID(),
			Name:  r.Name(),
			Phone: r.Phone(),
		})
	}
	return responses, nil
}
