package handover_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
)

func initiatedHandover(t *testing.T) *handover.Handover {
	t.Helper()
	point, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)
	h, err := handover.NewHandover(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), "flat tire", point,
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return h
}

func Test_NewHandover_Success(t *testing.T) {
	h := initiatedHandover(t)

	assert.NoError(t, h.Validate())
	assert.Equal(t, handover.Initiated, h.Status())
	assert.Equal(t, 1, h.Version())
	assert.Nil(t, h.AcceptedAt())
	assert.Nil(t, h.ConfirmedAt())
}

func Test_NewHandover_SameRider(t *testing.T) {
	point, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)
	riderID := kernel.NewUUID()

	_, err = handover.NewHandover(kernel.NewUUID(), kernel.NewUUID(), riderID, riderID,
		"flat tire", point, time.Now())

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_NewHandover_EmptyReason(t *testing.T) {
	point, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)

	_, err = handover.NewHandover(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), "", point, time.Now())

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_Handover_AcceptByRelievingRider(t *testing.T) {
	h := initiatedHandover(t)
	at := h.InitiatedAt().Add(5 * time.Minute)

	err := h.Accept(h.NewRiderID(), at)

	require.NoError(t, err)
	assert.Equal(t, handover.Accepted, h.Status())
	require.NotNil(t, h.AcceptedAt())
	assert.Equal(t, at, *h.AcceptedAt())
}

func Test_Handover_AcceptByWrongRider(t *testing.T) {
	h := initiatedHandover(t)

	err := h.Accept(kernel.NewUUID(), time.Now())

	assert.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Equal(t, handover.Initiated, h.Status())
}

func Test_Handover_AcceptByOriginalRider(t *testing.T) {
	h := initiatedHandover(t)

	err := h.Accept(h.OriginalRiderID(), time.Now())

	assert.ErrorIs(t, err, errs.ErrAuthorization)
}

func Test_Handover_ConfirmAfterAccept(t *testing.T) {
	h := initiatedHandover(t)
	require.NoError(t, h.Accept(h.NewRiderID(), h.InitiatedAt().Add(5*time.Minute)))
	at := h.InitiatedAt().Add(20 * time.Minute)

	err := h.Confirm(at)

	require.NoError(t, err)
	assert.Equal(t, handover.Confirmed, h.Status())
	require.NotNil(t, h.ConfirmedAt())
	assert.Equal(t, at, *h.ConfirmedAt())
	assert.True(t, h.Status().IsTerminal())
}

func Test_Handover_ConfirmBeforeAccept(t *testing.T) {
	h := initiatedHandover(t)

	err := h.Confirm(time.Now())

	assert.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, handover.Initiated, h.Status())
}

func Test_Handover_ConfirmAfterCancel(t *testing.T) {
	h := initiatedHandover(t)
	require.NoError(t, h.Cancel("relieving rider unreachable", time.Now()))

	err := h.Confirm(time.Now())

	assert.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, handover.Cancelled, h.Status())
}

func Test_Handover_CancelFromAccepted(t *testing.T) {
	h := initiatedHandover(t)
	require.NoError(t, h.Accept(h.NewRiderID(), time.Now()))

	err := h.Cancel("route blocked", time.Now())

	require.NoError(t, err)
	assert.Equal(t, handover.Cancelled, h.Status())
	assert.NotNil(t, h.CancelledAt())
	assert.Equal(t, "route blocked", h.CancelReason())
}

func Test_Handover_CancelWithoutReason(t *testing.T) {
	h := initiatedHandover(t)

	err := h.Cancel("", time.Now())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, handover.Initiated, h.Status())
	assert.Nil(t, h.CancelledAt())
}

func Test_Handover_CancelAfterConfirm(t *testing.T) {
	h := initiatedHandover(t)
	require.NoError(t, h.Accept(h.NewRiderID(), time.Now()))
	require.NoError(t, h.Confirm(time.Now()))

	err := h.Cancel("too late", time.Now())

	assert.ErrorIs(t, err, errs.ErrStateConflict)
}

func Test_RestoreHandover(t *testing.T) {
	point, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)
	acceptedAt := time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)

	h := handover.RestoreHandover(handover.RestoreHandoverParams{
		ID:              kernel.NewUUID(),
		OrderID:         kernel.NewUUID(),
		OriginalRiderID: kernel.NewUUID(),
		NewRiderID:      kernel.NewUUID(),
		Reason:          "shift end",
		Point:           point,
		Status:          handover.Accepted,
		InitiatedAt:     acceptedAt.Add(-5 * time.Minute),
		AcceptedAt:      &acceptedAt,
		Version:         3,
	})

	assert.NoError(t, h.Validate())
	assert.Equal(t, handover.Accepted, h.Status())
	assert.Equal(t, 3, h.Version())
	require.NoError(t, h.Confirm(acceptedAt.Add(10*time.Minute)))
	assert.Equal(t, handover.Confirmed, h.Status())
}
