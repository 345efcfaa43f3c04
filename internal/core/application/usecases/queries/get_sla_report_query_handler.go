package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/services"
	"medcourier/internal/pkg/errs"
)

// GetSLAReportQueryHandler restores order aggregates from the database and
// runs the deadline evaluation on each. Hospital overrides registered on the
// monitor apply automatically.
type GetSLAReportQueryHandler struct {
	db      *gorm.DB
	monitor *services.SLAMonitor
}

// NewGetSLAReportQueryHandler creates a handler for fleet-wide SLA reports.
func NewGetSLAReportQueryHandler(db *gorm.DB, monitor *services.SLAMonitor) GetSLAReportQueryHandler {
	return GetSLAReportQueryHandler{db: db, monitor: monitor}
}

type orderRow struct {
	ID         uuid.UUID
	CenterID   uuid.UUID
	HospitalID uuid.UUID
	RiderID    uuid.NullUUID
	HandoverID uuid.NullUUID
	Urgency    int
	Status     int

	CreatedAt    time.Time
	AssignedAt   *time.Time
	PickedUpAt   *time.Time
	InTransitAt  *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string

	PickupDistanceKm     float64
	RiderAToHandoverKm   float64
	RiderBFromHandoverKm float64
	ActualDistanceKm     float64

	Version int
}

// Handle executes the report over every order on record, evaluated at the
// current instant. Open legs keep accruing lateness until their closing scan
// lands, so repeated calls can flip flags from on-time to late.
func (h GetSLAReportQueryHandler) Handle(
	ctx context.Context,
	query GetSLAReportQuery,
) (GetSLAReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSLAReportQueryResponse{}, err
	}

	sql := `
		SELECT id, center_id, hospital_id, rider_id, handover_id,
			urgency, status,
			created_at, assigned_at, picked_up_at, in_transit_at,
			delivered_at, cancelled_at, cancel_reason,
			pickup_distance_km, rider_a_to_handover_km,
			rider_b_from_handover_km, actual_distance_km, version
		FROM orders`
	args := make([]any, 0, 1)
	if orderID := query.OrderID(); orderID != nil {
		sql += ` WHERE id = ?`
		args = append(args, orderID.Bytes())
	}
	sql += ` ORDER BY created_at`

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error
	if err != nil {
		return GetSLAReportQueryResponse{}, err
	}
	if orderID := query.OrderID(); orderID != nil && len(rows) == 0 {
		return GetSLAReportQueryResponse{},
			errs.NewObjectNotFoundError("order", orderID.String())
	}

	now := time.Now().UTC()
	response := GetSLAReportQueryResponse{
		Orders: make([]services.SLAReport, 0, len(rows)),
	}

	for _, row := range rows {
		aggregate, rowErr := row.toOrder()
		if rowErr != nil {
			return GetSLAReportQueryResponse{}, rowErr
		}

		report, evalErr := h.monitor.Evaluate(aggregate, now)
		if evalErr != nil {
			return GetSLAReportQueryResponse{}, evalErr
		}
		response.Orders = append(response.Orders, report)

		if report.Excluded {
			response.CancelledExcluded++
			continue
		}
		response.Evaluated++
		if report.PickupLate {
			response.PickupBreaches++
		}
		if report.DeliveryLate {
			response.DeliveryBreaches++
		}
	}

	return response, nil
}

func (r orderRow) toOrder() (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	centerID, err := kernel.UUIDFromBytes(r.CenterID[:])
	if err != nil {
		return nil, err
	}
	hospitalID, err := kernel.UUIDFromBytes(r.HospitalID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if r.RiderID.Valid {
		parsed, idErr := kernel.UUIDFromBytes(r.RiderID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		riderID = &parsed
	}
	var handoverID *kernel.UUID
	if r.HandoverID.Valid {
		parsed, idErr := kernel.UUIDFromBytes(r.HandoverID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		handoverID = &parsed
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:         id,
		CenterID:   centerID,
		HospitalID: hospitalID,
		Urgency:    order.Urgency(r.Urgency),
		Status:     order.Status(r.Status),
		RiderID:    riderID,
		HandoverID: handoverID,

		CreatedAt:    r.CreatedAt,
		AssignedAt:   r.AssignedAt,
		PickedUpAt:   r.PickedUpAt,
		InTransitAt:  r.InTransitAt,
		DeliveredAt:  r.DeliveredAt,
		CancelledAt:  r.CancelledAt,
		CancelReason: r.CancelReason,

		PickupDistanceKm:     r.PickupDistanceKm,
		RiderAToHandoverKm:   r.RiderAToHandoverKm,
		RiderBFromHandoverKm: r.RiderBFromHandoverKm,
		ActualDistanceKm:     r.ActualDistanceKm,

		Version: r.Version,
	})
}
