package ports

import (
	"context"

	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
)

// EventPublisher notifies downstream consumers about domain changes.
// Publishing happens after the owning transaction commits; a publish failure
// never rolls back authoritative state.
type EventPublisher interface {
	// PublishOrderChanged announces an order status change.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error

	// PublishScanRecorded announces a newly recorded scan event.
	PublishScanRecorded(ctx context.Context, event qr.ScanEvent) error
}
