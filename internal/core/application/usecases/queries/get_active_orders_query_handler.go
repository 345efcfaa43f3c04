package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Returns orders that are neither delivered nor cancelled, oldest first so
// the longest-waiting samples surface at the top of dispatch boards.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			center_id,
			hospital_id,
			rider_id,
			urgency,
			status,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, int(order.Delivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, centerID, hospitalID uuid.UUID
		var riderID uuid.NullUUID
		var urgency, status int

		err = rows.Scan(
			&id,
			&centerID,
			&hospitalID,
			&riderID,
			&urgency,
			&status,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.CenterID, err = kernel.UUIDFromBytes(centerID[:])
		if err != nil {
			return nil, err
		}
		resp.HospitalID, err = kernel.UUIDFromBytes(hospitalID[:])
		if err != nil {
			return nil, err
		}
		if riderID.Valid {
			rider, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.RiderID = &rider
		}
		resp.Urgency = order.Urgency(urgency)
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
