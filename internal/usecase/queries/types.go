package queries

import (
	"context"
	"time"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	DNI           string    `json:"dni"`
	RequesterName string    `json:"requester_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	FieldID       uuid.UUID `json:"field_id"`
	FieldName     string    `json:"field_name"`
	FieldCategory string    `json:"field_category"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type FieldView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Capacity  int       `json:"capacity"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type FieldAvailabilityView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Capacity  int       `json:"capacity"`
	FreeSlots []string  `json:"free_slots"`
}

// Read store ports, implemented by infra/readstore.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	// ActiveStartTimes returns the start times of active reservations
	// on (fieldID, date), ascending.
	ActiveStartTimes(ctx context.Context, fieldID uuid.UUID, date reservation.Date) ([]reservation.Slot, error)
}

type FieldReadStore interface {
	// FindActive lists active fields ordered by category then name,
	// optionally filtered to one category.
	FindActive(ctx context.Context, category *field.Category) ([]*FieldView, error)
	FindAll(ctx context.Context) ([]*FieldView, error)
}
