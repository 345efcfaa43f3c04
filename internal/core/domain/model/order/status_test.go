package order_test

import (
	"testing"

	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PendingRiderAssignment", order.PendingRiderAssignment.String())
	assert.Equal(t, "Assigned", order.Assigned.String())
	assert.Equal(t, "PickedUp", order.PickedUp.String())
	assert.Equal(t, "InTransit", order.InTransit.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.PendingRiderAssignment, order.Assigned, order.PickedUp,
		order.InTransit, order.Delivered, order.Cancelled,
	} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("the only forward path is the lifecycle DAG", func(t *testing.T) {
		s, err := order.PendingRiderAssignment.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, s)

		s, err = s.PickUp()
		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, s)

		s, err = s.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("skipping a state is a conflict carrying the current state", func(t *testing.T) {
		_, err := order.Assigned.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), "Assigned")
	})

	t.Run("no transition moves backwards", func(t *testing.T) {
		_, err := order.InTransit.PickUp()
		require.ErrorIs(t, err, errs.ErrStateConflict)

		_, err = order.Delivered.StartTransit()
		require.ErrorIs(t, err, errs.ErrStateConflict)

		_, err = order.PickedUp.Assign()
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("cancel is reachable from every non-terminal state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingRiderAssignment, order.Assigned, order.PickedUp, order.InTransit,
		} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("terminal states admit no transitions", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled} {
			assert.True(t, s.IsTerminal())

			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())

			_, err = s.Assign()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})
}
