package services

import (
	"time"

	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/rider"
	"medcourier/internal/pkg/errs"
)

// RiderAssigner is a domain service executing the atomic rider assignment
// workflow for a sample order.
//
// Business rules:
//   - The rider must hold an effective approval for the destination hospital
//   - The rider must be available; a rider already busy on another order
//     fails with a state conflict rather than being double-booked
//   - Marking the rider busy and assigning the order happen together, so
//     either both aggregates change or neither does
type RiderAssigner struct{}

// NewRiderAssigner creates a new RiderAssigner instance.
func NewRiderAssigner() RiderAssigner {
	return RiderAssigner{}
}

// Assign places the order on the rider at the given instant.
func (a RiderAssigner) Assign(o *order.Order, r *rider.Rider, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	approved, err := r.IsApprovedFor(o.HospitalID())
	if err != nil {
		return err
	}
	if !approved {
		return errs.NewAuthorizationError(r.ID().String(),
			"deliveries to hospital "+o.HospitalID().String())
	}

	if err := r.MarkBusy(); err != nil {
		return err
	}

	return o.AssignRider(r.ID(), at)
}
