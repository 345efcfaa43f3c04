package queries

import (
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/services"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var (
	ErrGetSLAReportQueryIsNotConstructed = errors.New(
		"GetSLAReportQuery must be created via NewGetSLAReportQuery constructor",
	)
)

// GetSLAReportQuery evaluates every order against its urgency tier's
// deadlines and aggregates the lateness picture. Cancelled orders never
// count against compliance; they are surfaced as an excluded count instead
// of silently disappearing.
type GetSLAReportQuery struct {
	guard   guard.ConstructorGuard
	orderID *kernel.UUID
}

// NewGetSLAReportQuery creates a fleet-wide lateness report query.
func NewGetSLAReportQuery() GetSLAReportQuery {
	return GetSLAReportQuery{guard: guard.NewConstructorGuard()}
}

// NewGetSLAReportQueryForOrder narrows the report to a single order.
func NewGetSLAReportQueryForOrder(orderID kernel.UUID) (GetSLAReportQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetSLAReportQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetSLAReportQuery{guard: guard.NewConstructorGuard(), orderID: &orderID}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSLAReportQueryIsNotConstructed if validation fails.
func (q GetSLAReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSLAReportQueryIsNotConstructed)
}

// OrderID returns the optional single-order filter.
func (q GetSLAReportQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// GetSLAReportQueryResponse is the aggregate lateness report.
type GetSLAReportQueryResponse struct {
	Evaluated         int
	PickupBreaches    int
	DeliveryBreaches  int
	CancelledExcluded int
	Orders            []services.SLAReport
}
