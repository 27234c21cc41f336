package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPastDate     = errors.New("date is in the past")
	ErrWindowClosed = errors.New("lead time window closed")
	ErrNotActive    = errors.New("reservation is not active")
)

// Reservation is a one-hour booking of a field by a requester. Once
// cancelled it is retained forever and never participates in conflict
// or daily-uniqueness checks again.
type Reservation struct {
	id        uuid.UUID
	requester Requester
	fieldID   uuid.UUID
	date      Date
	slot      TimeRange
	status    Status
	createdAt time.Time
}

func NewReservation(requester Requester, fieldID uuid.UUID, date Date, start Slot, now time.Time) (*Reservation, error) {
	if date.Before(DateOf(now)) {
		return nil, ErrPastDate
	}

	return &Reservation{
		id:        uuid.New(),
		requester: requester,
		fieldID:   fieldID,
		date:      date,
		slot:      NewRange(start),
		status:    StatusActive,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	requester Requester,
	fieldID uuid.UUID,
	date Date,
	start Slot,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		requester: requester,
		fieldID:   fieldID,
		date:      date,
		slot:      NewRange(start),
		status:    status,
		createdAt: createdAt,
	}
}

// HoursUntilStart truncates toward zero: 24h30m remaining counts as 24.
func (r *Reservation) HoursUntilStart(now time.Time) int {
	return int(r.date.At(r.slot.Start()).Sub(now).Hours())
}

// EnsureChangeable verifies the reservation is active and that more
// than leadHours whole hours remain before its start.
func (r *Reservation) EnsureChangeable(now time.Time, leadHours int) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if r.HoursUntilStart(now) <= leadHours {
		return ErrWindowClosed
	}
	return nil
}

// Cancel flips the reservation to Cancelled if the lead-time window is
// still open.
func (r *Reservation) Cancel(now time.Time, leadHours int) error {
	if err := r.EnsureChangeable(now, leadHours); err != nil {
		return err
	}
	r.status = StatusCancelled
	return nil
}

// Reassign moves the booking to a new field/date/start in place; it
// stays the same logical reservation with the same ID. The lead-time
// window is checked against the slot being vacated, not the new one.
func (r *Reservation) Reassign(fieldID uuid.UUID, date Date, start Slot, now time.Time, leadHours int) error {
	if err := r.EnsureChangeable(now, leadHours); err != nil {
		return err
	}
	r.fieldID = fieldID
	r.date = date
	r.slot = NewRange(start)
	return nil
}

// ConflictsWith reports whether two reservations compete for the same
// field at overlapping times. Cancelled reservations never conflict.
func (r *Reservation) ConflictsWith(o *Reservation) bool {
	if r.id == o.id {
		return false
	}
	if r.status != StatusActive || o.status != StatusActive {
		return false
	}
	if r.fieldID != o.fieldID || !r.date.Equal(o.date) {
		return false
	}
	return r.slot.Overlaps(o.slot)
}

func (r *Reservation) IsActive() bool    { return r.status == StatusActive }
func (r *Reservation) IsCancelled() bool { return r.status == StatusCancelled }

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Requester() Requester { return r.requester }
func (r *Reservation) FieldID() uuid.UUID   { return r.fieldID }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) Slot() TimeRange      { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
