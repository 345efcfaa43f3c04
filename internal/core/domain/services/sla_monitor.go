package services

import (
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
)

// SLAPolicy is the deadline pair applied to one urgency tier. The pickup
// response window runs from rider assignment to the pickup scan; the total
// delivery window runs from the pickup scan to delivery.
type SLAPolicy struct {
	PickupResponse time.Duration
	TotalDelivery  time.Duration
}

// SLAReport is the lateness evaluation of one order at one instant.
// Cancelled orders are excluded from compliance aggregates but still appear
// in audit history, so Excluded is reported rather than dropping the order.
type SLAReport struct {
	OrderID             kernel.UUID
	Urgency             order.Urgency
	Policy              SLAPolicy
	PickupLate          bool
	PickupMinutesOver   float64
	DeliveryLate        bool
	DeliveryMinutesOver float64
	Excluded            bool
}

// SLAMonitor is a domain service evaluating delivery deadlines against the
// tier policy, with optional per-hospital overrides.
//
// Business rules:
//   - Pickup lateness is measured from assignment to pickup scan
//   - Delivery lateness is measured from pickup scan to delivery and is only
//     evaluable once a pickup happened
//   - Open legs are measured against the evaluation instant, so flags flip
//     continuously while the order is non-terminal
//   - Terminal timestamps freeze the evaluation
//   - Cancelled orders are marked excluded
type SLAMonitor struct {
	defaults  map[order.Urgency]SLAPolicy
	overrides map[kernel.UUID]map[order.Urgency]SLAPolicy
}

// NewSLAMonitor creates a monitor with the standard tier policy:
// emergency 10/30 minutes, urgent 15/45, routine 30/90.
func NewSLAMonitor() *SLAMonitor {
	return &SLAMonitor{
		defaults: map[order.Urgency]SLAPolicy{
			order.Emergency: {PickupResponse: 10 * time.Minute, TotalDelivery: 30 * time.Minute},
			order.Urgent:    {PickupResponse: 15 * time.Minute, TotalDelivery: 45 * time.Minute},
			order.Routine:   {PickupResponse: 30 * time.Minute, TotalDelivery: 90 * time.Minute},
		},
		overrides: make(map[kernel.UUID]map[order.Urgency]SLAPolicy),
	}
}

// OverrideForHospital replaces the policy of one urgency tier for deliveries
// to the given hospital.
func (m *SLAMonitor) OverrideForHospital(hospitalID kernel.UUID, urgency order.Urgency, policy SLAPolicy) {
	if m.overrides[hospitalID] == nil {
		m.overrides[hospitalID] = make(map[order.Urgency]SLAPolicy)
	}
	m.overrides[hospitalID][urgency] = policy
}

// PolicyFor returns the effective policy for a hospital and urgency tier.
func (m *SLAMonitor) PolicyFor(hospitalID kernel.UUID, urgency order.Urgency) SLAPolicy {
	if byUrgency, ok := m.overrides[hospitalID]; ok {
		if policy, ok := byUrgency[urgency]; ok {
			return policy
		}
	}
	return m.defaults[urgency]
}

// Evaluate computes the lateness report for an order at the given instant.
func (m *SLAMonitor) Evaluate(o *order.Order, now time.Time) (SLAReport, error) {
	if err := o.Validate(); err != nil {
		return SLAReport{}, err
	}

	policy := m.PolicyFor(o.HospitalID(), o.Urgency())
	report := SLAReport{
		OrderID:  o.ID(),
		Urgency:  o.Urgency(),
		Policy:   policy,
		Excluded: o.Status() == order.Cancelled,
	}

	// Cancellation is terminal: open legs stop accruing lateness there.
	if cancelledAt := o.CancelledAt(); cancelledAt != nil && cancelledAt.Before(now) {
		now = *cancelledAt
	}

	if assignedAt := o.AssignedAt(); assignedAt != nil {
		elapsed := legDuration(*assignedAt, o.PickedUpAt(), now)
		if elapsed > policy.PickupResponse {
			report.PickupLate = true
			report.PickupMinutesOver = (elapsed - policy.PickupResponse).Minutes()
		}
	}

	if pickedUpAt := o.PickedUpAt(); pickedUpAt != nil {
		elapsed := legDuration(*pickedUpAt, o.DeliveredAt(), now)
		if elapsed > policy.TotalDelivery {
			report.DeliveryLate = true
			report.DeliveryMinutesOver = (elapsed - policy.TotalDelivery).Minutes()
		}
	}

	return report, nil
}

// legDuration measures a leg frozen at its end timestamp, or still running
// against the evaluation instant.
func legDuration(start time.Time, end *time.Time, now time.Time) time.Duration {
	if end != nil {
		return end.Sub(start)
	}
	return now.Sub(start)
}
