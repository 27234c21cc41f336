package shared

import (
	"time"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types.
type FieldSnapshot struct {
	ID       uuid.UUID
	Name     string
	Category field.Category
	Capacity int
	Active   bool
}

type ReservationSnapshot struct {
	ID        uuid.UUID
	DNI       string
	Name      string
	Phone     string
	Email     string
	FieldID   uuid.UUID
	Date      reservation.Date
	Start     reservation.Slot
	Status    reservation.Status
	CreatedAt time.Time
}

// Entity rebuilds the domain aggregate from a snapshot so domain rules
// (cancellation window, reassignment) run against stored state.
func (s *ReservationSnapshot) Entity() *reservation.Reservation {
	return reservation.Reconstruct(
		s.ID,
		reservation.ReconstructRequester(s.DNI, s.Name, s.Phone, s.Email),
		s.FieldID,
		s.Date,
		s.Start,
		s.Status,
		s.CreatedAt,
	)
}
