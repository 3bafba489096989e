package services

import (
	"testing"
	"time"

	"ridelink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingProgressSaveAndRestore(t *testing.T) {
	s := NewBookingProgressService()

	snapshot := models.BookingProgressSnapshot{
		PickupAddress:         "101 Market St",
		DestinationAddress:    "1400 Market St",
		SelectedPaymentMethod: "venmo",
	}

	require.True(t, s.Save("session-1", snapshot))

	restored, ok := s.Restore("session-1")
	require.True(t, ok)
	assert.Equal(t, "101 Market St", restored.PickupAddress)
	assert.Equal(t, "1400 Market St", restored.DestinationAddress)
	assert.Equal(t, "venmo", restored.SelectedPaymentMethod)
	assert.False(t, restored.SavedAt.IsZero())
}

func TestBookingProgressRestoreEmpty(t *testing.T) {
	s := NewBookingProgressService()

	restored, ok := s.Restore("unknown-session")
	assert.False(t, ok)
	assert.Nil(t, restored)
}

func TestBookingProgressRejectsEmptySnapshot(t *testing.T) {
	s := NewBookingProgressService()

	assert.False(t, s.Save("session-1", models.BookingProgressSnapshot{}))
	assert.False(t, s.Save("", models.BookingProgressSnapshot{PickupAddress: "somewhere"}))

	_, ok := s.Restore("session-1")
	assert.False(t, ok)
}

func TestBookingProgressStaleSlotIsDiscarded(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewBookingProgressService().WithClock(func() time.Time { return now })

	require.True(t, s.Save("session-1", models.BookingProgressSnapshot{PickupAddress: "101 Market St"}))

	// 25 hours later the slot is stale: discarded and reported absent.
	now = now.Add(25 * time.Hour)
	restored, ok := s.Restore("session-1")
	assert.False(t, ok)
	assert.Nil(t, restored)

	// The slot stays cleared even when the clock goes back within the window.
	now = now.Add(-24 * time.Hour)
	_, ok = s.Restore("session-1")
	assert.False(t, ok)
}

func TestBookingProgressSaveEvictsAbandonedSessions(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewBookingProgressService().WithClock(func() time.Time { return now })

	require.True(t, s.Save("abandoned", models.BookingProgressSnapshot{PickupAddress: "101 Market St"}))

	// A save from any other session sweeps out expired slots.
	now = now.Add(25 * time.Hour)
	require.True(t, s.Save("active", models.BookingProgressSnapshot{PickupAddress: "1400 Market St"}))

	// The abandoned slot is gone, not merely reported stale: rolling the
	// clock back inside the window still finds nothing.
	now = now.Add(-24 * time.Hour)
	_, ok := s.Restore("abandoned")
	assert.False(t, ok)
}

func TestBookingProgressFreshRestoreWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewBookingProgressService().WithClock(func() time.Time { return now })

	require.True(t, s.Save("session-1", models.BookingProgressSnapshot{PickupAddress: "101 Market St"}))

	now = now.Add(23 * time.Hour)
	restored, ok := s.Restore("session-1")
	require.True(t, ok)
	assert.Equal(t, "101 Market St", restored.PickupAddress)
}

func TestBookingProgressOverwriteAndClear(t *testing.T) {
	s := NewBookingProgressService()

	require.True(t, s.Save("session-1", models.BookingProgressSnapshot{PickupAddress: "first"}))
	require.True(t, s.Save("session-1", models.BookingProgressSnapshot{PickupAddress: "second"}))

	restored, ok := s.Restore("session-1")
	require.True(t, ok)
	assert.Equal(t, "second", restored.PickupAddress, "save overwrites unconditionally")

	s.Clear("session-1")
	_, ok = s.Restore("session-1")
	assert.False(t, ok)
}

func TestBookingProgressSessionsAreIndependent(t *testing.T) {
	s := NewBookingProgressService()

	require.True(t, s.Save("session-a", models.BookingProgressSnapshot{PickupAddress: "a"}))
	require.True(t, s.Save("session-b", models.BookingProgressSnapshot{PickupAddress: "b"}))

	s.Clear("session-a")

	_, ok := s.Restore("session-a")
	assert.False(t, ok)

	restored, ok := s.Restore("session-b")
	require.True(t, ok)
	assert.Equal(t, "b", restored.PickupAddress)
}
