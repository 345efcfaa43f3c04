package order_test

import (
	"testing"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Emergency, 12.5, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order awaiting rider assignment", func(t *testing.T) {
		createdAt := time.Now()
		id := kernel.NewUUID()
		o, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), order.Routine, 8.2, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.PendingRiderAssignment, o.Status())
		assert.Equal(t, order.Routine, o.Urgency())
		assert.InDelta(t, 8.2, o.PickupDistanceKm(), 1e-9)
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Nil(t, o.Rider())
		assert.Nil(t, o.Handover())
		assert.Nil(t, o.AssignedAt())
	})

	t.Run("should fail with invalid urgency", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.UnknownUrgency, 8.2, time.Now())

		require.Error(t, err)
	})

	t.Run("should fail with negative pickup distance", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Routine, -1, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		require.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	riderID := kernel.NewUUID()
	base := time.Now()

	t.Run("full lifecycle stamps each transition once", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignRider(riderID, base))
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Rider())
		assert.True(t, o.Rider().IsEqual(riderID))
		assert.Equal(t, base, *o.AssignedAt())

		require.NoError(t, o.MarkPickedUp(base.Add(5*time.Minute)))
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.StartTransit(base.Add(7*time.Minute)))
		assert.Equal(t, order.InTransit, o.Status())

		require.NoError(t, o.MarkDelivered(base.Add(25*time.Minute)))
		assert.Equal(t, order.Delivered, o.Status())
		assert.InDelta(t, o.PickupDistanceKm(), o.ActualDistanceKm(), 1e-9,
			"delivery without handover travels the pickup route")
	})

	t.Run("delivery before transit is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignRider(riderID, base))
		require.NoError(t, o.MarkPickedUp(base.Add(time.Minute)))

		err := o.MarkDelivered(base.Add(2 * time.Minute))

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, order.PickedUp, o.Status(), "failed transition must not change state")
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("pickup before assignment is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.MarkPickedUp(base)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestOrder_Cancel(t *testing.T) {
	base := time.Now()

	t.Run("cancellation requires a reason", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Cancel("", base)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.PendingRiderAssignment, o.Status())
	})

	t.Run("cancellation works from any non-terminal state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignRider(kernel.NewUUID(), base))
		require.NoError(t, o.MarkPickedUp(base.Add(time.Minute)))

		require.NoError(t, o.Cancel("sample hemolyzed", base.Add(2*time.Minute)))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "sample hemolyzed", o.CancelReason())
		require.NotNil(t, o.CancelledAt())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignRider(kernel.NewUUID(), base))
		require.NoError(t, o.MarkPickedUp(base.Add(time.Minute)))
		require.NoError(t, o.StartTransit(base.Add(2*time.Minute)))
		require.NoError(t, o.MarkDelivered(base.Add(20*time.Minute)))

		err := o.Cancel("too late", base.Add(21*time.Minute))

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestOrder_Handover(t *testing.T) {
	base := time.Now()

	inTransitOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o := newTestOrder(t)
		require.NoError(t, o.AssignRider(kernel.NewUUID(), base))
		require.NoError(t, o.MarkPickedUp(base.Add(time.Minute)))
		require.NoError(t, o.StartTransit(base.Add(2*time.Minute)))
		return o
	}

	t.Run("attach requires picked up or in transit", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AttachHandover(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("only one active handover per order", func(t *testing.T) {
		o := inTransitOrder(t)
		require.NoError(t, o.AttachHandover(kernel.NewUUID()))

		err := o.AttachHandover(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("confirmed handover splits distance attribution", func(t *testing.T) {
		o := inTransitOrder(t)
		newRider := kernel.NewUUID()
		require.NoError(t, o.AttachHandover(kernel.NewUUID()))

		require.NoError(t, o.ApplyHandoverSplit(newRider, 4.5, 9.25))

		assert.True(t, o.Rider().IsEqual(newRider))
		assert.InDelta(t, 4.5, o.RiderAToHandoverKm(), 1e-9)
		assert.InDelta(t, 9.25, o.RiderBFromHandoverKm(), 1e-9)
		assert.InDelta(t, o.PickupDistanceKm()+4.5+9.25, o.ActualDistanceKm(), 1e-9)
	})

	t.Run("split without an attached handover is rejected", func(t *testing.T) {
		o := inTransitOrder(t)

		err := o.ApplyHandoverSplit(kernel.NewUUID(), 1, 1)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("cancelled handover detaches and keeps custody", func(t *testing.T) {
		o := inTransitOrder(t)
		originalRider := *o.Rider()
		require.NoError(t, o.AttachHandover(kernel.NewUUID()))

		o.DetachHandover()

		assert.Nil(t, o.Handover())
		assert.True(t, o.Rider().IsEqual(originalRider))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores full persisted state", func(t *testing.T) {
		riderID := kernel.NewUUID()
		assignedAt := time.Now()

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:               kernel.NewUUID(),
			CenterID:         kernel.NewUUID(),
			HospitalID:       kernel.NewUUID(),
			Urgency:          order.Urgent,
			Status:           order.Assigned,
			RiderID:          &riderID,
			CreatedAt:        assignedAt.Add(-time.Minute),
			AssignedAt:       &assignedAt,
			PickupDistanceKm: 10,
			Version:          3,
		})

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, 3, o.Version())
	})

	t.Run("rejects assigned order without rider", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:         kernel.NewUUID(),
			CenterID:   kernel.NewUUID(),
			HospitalID: kernel.NewUUID(),
			Urgency:    order.Urgent,
			Status:     order.Assigned,
			CreatedAt:  time.Now(),
			Version:    1,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
