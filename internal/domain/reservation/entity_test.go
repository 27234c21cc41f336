//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cancelLeadHours = 24

func mustDate(t *testing.T, s string) reservation.Date {
	t.Helper()
	d, err := reservation.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustSlot(t *testing.T, s string) reservation.Slot {
	t.Helper()
	slot, err := reservation.ParseSlot(s)
	require.NoError(t, err)
	return slot
}

func validRequester(t *testing.T) reservation.Requester {
	t.Helper()
	r, err := reservation.NewRequester("12345678", "Juan Perez", "1155554444", "juan@example.com")
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	req := validRequester(t)

	t.Run("future date", func(t *testing.T) {
		r, err := reservation.NewReservation(req, uuid.New(), mustDate(t, "2026-09-15"), mustSlot(t, "10:00"), now)
		require.NoError(t, err)
		assert.True(t, r.IsActive())
		assert.Equal(t, "10:00", r.Slot().Start().String())
		assert.Equal(t, "11:00", r.Slot().End().String())
	})

	t.Run("same day is allowed", func(t *testing.T) {
		_, err := reservation.NewReservation(req, uuid.New(), mustDate(t, "2026-09-10"), mustSlot(t, "20:00"), now)
		require.NoError(t, err)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(req, uuid.New(), mustDate(t, "2026-09-09"), mustSlot(t, "10:00"), now)
		assert.ErrorIs(t, err, reservation.ErrPastDate)
	})
}

func TestHoursUntilStart(t *testing.T) {
	r := reservation.Reconstruct(
		uuid.New(), validRequester(t), uuid.New(),
		mustDate(t, "2026-09-15"), mustSlot(t, "10:00"),
		reservation.StatusActive, time.Now(),
	)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"exactly 24h before", time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local), 24},
		{"24h30m before truncates to 24", time.Date(2026, 9, 14, 9, 30, 0, 0, time.Local), 24},
		{"25h before", time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local), 25},
		{"1h after start", time.Date(2026, 9, 15, 11, 0, 0, 0, time.Local), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.HoursUntilStart(tt.now))
		})
	}
}

func TestCancel(t *testing.T) {
	build := func(status reservation.Status) *reservation.Reservation {
		return reservation.Reconstruct(
			uuid.New(), validRequester(t), uuid.New(),
			mustDate(t, "2026-09-15"), mustSlot(t, "10:00"),
			status, time.Now(),
		)
	}

	t.Run("window open", func(t *testing.T) {
		r := build(reservation.StatusActive)
		now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local)
		require.NoError(t, r.Cancel(now, cancelLeadHours))
		assert.True(t, r.IsCancelled())
	})

	t.Run("exactly 24h remaining is too late", func(t *testing.T) {
		r := build(reservation.StatusActive)
		now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local)
		assert.ErrorIs(t, r.Cancel(now, cancelLeadHours), reservation.ErrWindowClosed)
		assert.True(t, r.IsActive())
	})

	t.Run("24h30m remaining truncates and is too late", func(t *testing.T) {
		r := build(reservation.StatusActive)
		now := time.Date(2026, 9, 14, 9, 30, 0, 0, time.Local)
		assert.ErrorIs(t, r.Cancel(now, cancelLeadHours), reservation.ErrWindowClosed)
	})

	t.Run("already cancelled", func(t *testing.T) {
		r := build(reservation.StatusCancelled)
		now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
		assert.ErrorIs(t, r.Cancel(now, cancelLeadHours), reservation.ErrNotActive)
	})
}

func TestReassign(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)

	t.Run("moves slot and keeps identity", func(t *testing.T) {
		id := uuid.New()
		r := reservation.Reconstruct(
			id, validRequester(t), uuid.New(),
			mustDate(t, "2026-09-15"), mustSlot(t, "10:00"),
			reservation.StatusActive, time.Now(),
		)
		newField := uuid.New()

		require.NoError(t, r.Reassign(newField, mustDate(t, "2026-09-20"), mustSlot(t, "18:00"), now, cancelLeadHours))

		assert.Equal(t, id, r.ID())
		assert.Equal(t, newField, r.FieldID())
		assert.Equal(t, "2026-09-20", r.Date().String())
		assert.Equal(t, "18:00", r.Slot().Start().String())
		assert.Equal(t, "19:00", r.Slot().End().String())
	})

	t.Run("window measured against current slot", func(t *testing.T) {
		r := reservation.Reconstruct(
			uuid.New(), validRequester(t), uuid.New(),
			mustDate(t, "2026-09-11"), mustSlot(t, "10:00"),
			reservation.StatusActive, time.Now(),
		)
		// 22h before the current slot; the new slot being far away does
		// not reopen the window.
		err := r.Reassign(r.FieldID(), mustDate(t, "2026-12-01"), mustSlot(t, "10:00"), now, cancelLeadHours)
		assert.ErrorIs(t, err, reservation.ErrWindowClosed)
		assert.Equal(t, "2026-09-11", r.Date().String())
	})
}

func TestConflictsWith(t *testing.T) {
	fieldID := uuid.New()
	date := mustDate(t, "2026-09-15")

	build := func(fid uuid.UUID, d reservation.Date, start string, status reservation.Status) *reservation.Reservation {
		return reservation.Reconstruct(
			uuid.New(), validRequester(t), fid, d, mustSlot(t, start), status, time.Now(),
		)
	}

	a := build(fieldID, date, "10:00", reservation.StatusActive)

	assert.True(t, a.ConflictsWith(build(fieldID, date, "10:00", reservation.StatusActive)))
	assert.False(t, a.ConflictsWith(build(fieldID, date, "11:00", reservation.StatusActive)), "adjacent slots do not conflict")
	assert.False(t, a.ConflictsWith(build(fieldID, date, "10:00", reservation.StatusCancelled)), "cancelled never conflicts")
	assert.False(t, a.ConflictsWith(build(uuid.New(), date, "10:00", reservation.StatusActive)), "different field")
	assert.False(t, a.ConflictsWith(build(fieldID, mustDate(t, "2026-09-16"), "10:00", reservation.StatusActive)), "different date")
	assert.False(t, a.ConflictsWith(a), "never conflicts with itself")
}
