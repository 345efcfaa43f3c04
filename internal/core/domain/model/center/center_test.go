package center_test

import (
	"testing"
	"time"

	"medcourier/internal/core/domain/model/center"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCenter(t *testing.T) {
	location, err := kernel.NewGeoPoint(13.0827, 80.2707)
	require.NoError(t, err)
	hospitalID := kernel.NewUUID()

	t.Run("should start pending for every scope", func(t *testing.T) {
		c, err := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", location, hospitalID)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 1, c.Version())

		cleared, err := c.MayDispatchTo(hospitalID)
		require.NoError(t, err)
		assert.False(t, cleared)
	})

	t.Run("should fail without a name", func(t *testing.T) {
		_, err := center.NewCenter(kernel.NewUUID(), "", location, hospitalID)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without hospitals", func(t *testing.T) {
		_, err := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", location)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with an unconstructed location", func(t *testing.T) {
		_, err := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", kernel.GeoPoint{}, hospitalID)

		require.Error(t, err)
	})
}

func TestCenter_MayDispatchTo(t *testing.T) {
	location, _ := kernel.NewGeoPoint(13.0827, 80.2707)
	hospitalA := kernel.NewUUID()
	hospitalB := kernel.NewUUID()
	approver := kernel.NewUUID()
	now := time.Now()

	t.Run("requires both hospital and HQ sign-off", func(t *testing.T) {
		c, _ := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", location, hospitalA)

		require.NoError(t, c.Approval().ApproveByHospital(hospitalA, approver, now))
		cleared, err := c.MayDispatchTo(hospitalA)
		require.NoError(t, err)
		assert.False(t, cleared, "hospital approval alone is not enough")

		require.NoError(t, c.Approval().ApproveByHQ(approver, now))
		cleared, err = c.MayDispatchTo(hospitalA)
		require.NoError(t, err)
		assert.True(t, cleared)
	})

	t.Run("clearance is per hospital", func(t *testing.T) {
		c, _ := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", location, hospitalA, hospitalB)

		require.NoError(t, c.Approval().ApproveByHospital(hospitalA, approver, now))
		require.NoError(t, c.Approval().ApproveByHQ(approver, now))

		cleared, err := c.MayDispatchTo(hospitalA)
		require.NoError(t, err)
		assert.True(t, cleared)

		cleared, err = c.MayDispatchTo(hospitalB)
		require.NoError(t, err)
		assert.False(t, cleared)
	})

	t.Run("unknown hospital is an error", func(t *testing.T) {
		c, _ := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", location, hospitalA)

		_, err := c.MayDispatchTo(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRestoreCenter(t *testing.T) {
	location, _ := kernel.NewGeoPoint(13.0827, 80.2707)
	hospitalID := kernel.NewUUID()

	t.Run("restores record and version", func(t *testing.T) {
		fresh, _ := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", location, hospitalID)

		restored, err := center.RestoreCenter(
			fresh.ID(), fresh.Name(), fresh.Location(), fresh.Approval(), 4)

		require.NoError(t, err)
		assert.Equal(t, 4, restored.Version())
		assert.Equal(t, fresh.ID(), restored.ID())
	})

	t.Run("rejects invalid version", func(t *testing.T) {
		fresh, _ := center.NewCenter(kernel.NewUUID(), "Anna Nagar Diagnostics", location, hospitalID)

		_, err := center.RestoreCenter(
			fresh.ID(), fresh.Name(), fresh.Location(), fresh.Approval(), 0)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}
