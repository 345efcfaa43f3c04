package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medcourier/internal/core/domain/model/custody"
	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/ports"
	"medcourier/internal/pkg/errs"
)

// GetCustodyTimelineQueryHandler gathers an order's scan ledger, rejected
// duplicate attempts, lifecycle transitions and confirmed handovers, then
// derives the custody timeline from them. Read-only; the ledger itself is
// never touched.
type GetCustodyTimelineQueryHandler struct {
	db     *gorm.DB
	qrRepo ports.QRRepository
}

// NewGetCustodyTimelineQueryHandler creates a handler for custody timeline queries.
// The QR repository supplies the merged scan ledger; the database connection
// backs the order and handover lookups.
func NewGetCustodyTimelineQueryHandler(
	db *gorm.DB, qrRepo ports.QRRepository) GetCustodyTimelineQueryHandler {
	return GetCustodyTimelineQueryHandler{db: db, qrRepo: qrRepo}
}

// orderStateRow carries the per-order facts the reconstruction needs: the
// current rider and the transition timestamps that become timeline entries.
type orderStateRow struct {
	RiderID     uuid.NullUUID
	AssignedAt  *time.Time
	InTransitAt *time.Time
	CancelledAt *time.Time
}

type handoverRow struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	OriginalRiderID uuid.UUID
	NewRiderID      uuid.UUID
	Reason          string
	PointLatitude   float64
	PointLongitude  float64
	Status          int
	InitiatedAt     time.Time
	ConfirmedAt     *time.Time
	Version         int
}

// Handle executes the timeline reconstruction for one order.
// Returns ErrObjectNotFound when the order does not exist.
func (h GetCustodyTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetCustodyTimelineQuery,
) ([]GetCustodyTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	state, err := h.orderState(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	assignedRiderID := kernel.UUID{}
	if state.RiderID.Valid {
		assignedRiderID, err = kernel.UUIDFromBytes(state.RiderID.UUID[:])
		if err != nil {
			return nil, err
		}
	}

	scans, err := h.qrRepo.GetScansByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	transfers, err := h.confirmedHandoversOf(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	entries := custody.Reconstruct(assignedRiderID, scans, state.statusChanges(), transfers)

	timeline := make([]GetCustodyTimelineQueryResponse, 0, len(entries))
	for _, entry := range entries {
		timeline = append(timeline, GetCustodyTimelineQueryResponse(entry))
	}
	return timeline, nil
}

func (h GetCustodyTimelineQueryHandler) orderState(
	ctx context.Context, orderID kernel.UUID) (orderStateRow, error) {
	var rows []orderStateRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT rider_id, assigned_at, in_transit_at, cancelled_at
		FROM orders WHERE id = ?
	`, orderID.Bytes()).Scan(&rows).Error
	if err != nil {
		return orderStateRow{}, err
	}
	if len(rows) == 0 {
		return orderStateRow{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	return rows[0], nil
}

// statusChanges lists the order's scanless transitions. Pickup and delivery
// already appear in the timeline through their scans.
func (r orderStateRow) statusChanges() []custody.StatusChange {
	changes := make([]custody.StatusChange, 0, 3)
	if r.AssignedAt != nil {
		changes = append(changes, custody.StatusChange{
			Type: custody.RiderAssigned, OccurredAt: *r.AssignedAt})
	}
	if r.InTransitAt != nil {
		changes = append(changes, custody.StatusChange{
			Type: custody.TransitStarted, OccurredAt: *r.InTransitAt})
	}
	if r.CancelledAt != nil {
		changes = append(changes, custody.StatusChange{
			Type: custody.OrderCancelled, OccurredAt: *r.CancelledAt})
	}
	return changes
}

func (h GetCustodyTimelineQueryHandler) confirmedHandoversOf(
	ctx context.Context, orderID kernel.UUID) ([]*handover.Handover, error) {
	var rows []handoverRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, original_rider_id, new_rider_id, reason,
			point_latitude, point_longitude, status, initiated_at,
			confirmed_at, version
		FROM handovers
		WHERE order_id = ? AND status = ?
		ORDER BY initiated_at
	`, orderID.Bytes(), int(handover.Confirmed)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	transfers := make([]*handover.Handover, 0, len(rows))
	for _, row := range rows {
		transfer, rowErr := row.toHandover()
		if rowErr != nil {
			return nil, rowErr
		}
		transfers = append(transfers, transfer)
	}
	return transfers, nil
}

func (r handoverRow) toHandover() (*handover.Handover, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return nil, err
	}
	originalRiderID, err := kernel.UUIDFromBytes(r.OriginalRiderID[:])
	if err != nil {
		return nil, err
	}
	newRiderID, err := kernel.UUIDFromBytes(r.NewRiderID[:])
	if err != nil {
		return nil, err
	}
	point, err := kernel.NewGeoPoint(r.PointLatitude, r.PointLongitude)
	if err != nil {
		return nil, err
	}

	return handover.RestoreHandover(handover.RestoreHandoverParams{
		ID:              id,
		OrderID:         orderID,
		OriginalRiderID: originalRiderID,
		NewRiderID:      newRiderID,
		Reason:          r.Reason,
		Point:           point,
		Status:          handover.Status(r.Status),
		InitiatedAt:     r.InitiatedAt,
		ConfirmedAt:     r.ConfirmedAt,
		Version:         r.Version,
	}), nil
}
