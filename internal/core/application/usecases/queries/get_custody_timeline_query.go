package queries

import (
	"errors"
	"time"

	"medcourier/internal/core/domain/model/custody"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var (
	ErrGetCustodyTimelineQueryIsNotConstructed = errors.New(
		"GetCustodyTimelineQuery must be created via NewGetCustodyTimelineQuery constructor",
	)
)

// GetCustodyTimelineQuery reconstructs the chain-of-custody timeline of one
// order from its scan ledger, duplicate attempts and confirmed handovers.
// The timeline is derived on every read; nothing is written.
//
// Example:
//
//	query, err := NewGetCustodyTimelineQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	timeline, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, entry := range timeline {
//	    fmt.Printf("#%d %s by %s\n", entry.SequenceNo, entry.EventType, entry.ActorID)
//	}
type GetCustodyTimelineQuery struct {
	guard   guard.ConstructorGuard
	orderID kernel.UUID
}

// NewGetCustodyTimelineQuery creates a timeline query for the given order.
func NewGetCustodyTimelineQuery(orderID kernel.UUID) (GetCustodyTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCustodyTimelineQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetCustodyTimelineQuery{guard: guard.NewConstructorGuard(), orderID: orderID}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustodyTimelineQueryIsNotConstructed if validation fails.
func (q GetCustodyTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetCustodyTimelineQueryIsNotConstructed)
}

// OrderID returns the order whose timeline is requested.
func (q GetCustodyTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetCustodyTimelineQueryResponse is one row of the reconstructed timeline.
// Rejected duplicates stay visible so auditors see every physical
// interaction with the sample. Rows derived from lifecycle transitions
// carry a zero QRID.
type GetCustodyTimelineQueryResponse struct {
	SequenceNo        int
	QRID              kernel.UUID
	EventType         custody.EventType
	ActorID           kernel.UUID
	ActorRole         qr.Role
	CustodianRiderID  kernel.UUID
	Location          *kernel.GeoPoint
	OccurredAt        time.Time
	RejectedDuplicate bool
}
