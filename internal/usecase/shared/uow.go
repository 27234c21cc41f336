package shared

import (
	"context"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"

	"github.com/google/uuid"
)

// UnitOfWork scopes one check-then-write sequence to a single storage
// transaction. Every mutating command runs inside Within so its
// duplicate/conflict reads and the final write commit or roll back as
// one unit.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Fields() FieldRepository
	Reads() CommandReads
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	Reassign(ctx context.Context, id uuid.UUID, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange) error
}

type FieldRepository interface {
	Create(ctx context.Context, f *field.Field) error
	Update(ctx context.Context, f *field.Field) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// CommandReads are the write-side lookups the transaction manager
// needs: natural-key lookups plus the two scheduling predicates
// (daily uniqueness and interval conflict).
type CommandReads interface {
	FieldByID(ctx context.Context, id uuid.UUID) (*FieldSnapshot, error)

	// ActiveReservation finds the unique active reservation for
	// (dni, date, start).
	ActiveReservation(ctx context.Context, dni string, date reservation.Date, start reservation.Slot) (*ReservationSnapshot, error)
	ActiveReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)

	// HasActiveOnDate reports whether the requester already holds an
	// active reservation that day, on any field. exclude skips one
	// reservation ID so a reschedule does not collide with itself.
	HasActiveOnDate(ctx context.Context, dni string, date reservation.Date, exclude *uuid.UUID) (bool, error)

	// HasOverlap is the conflict detector: true when any active
	// reservation on (fieldID, date) overlaps slot under half-open
	// interval semantics.
	HasOverlap(ctx context.Context, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange, exclude *uuid.UUID) (bool, error)

	// ActiveFieldNameExists checks (name, category) uniqueness among
	// active fields only; inactive namesakes do not block creation.
	ActiveFieldNameExists(ctx context.Context, name string, category field.Category) (bool, error)

	// FieldHasActiveFrom reports whether the field holds any active
	// reservation on or after the given day.
	FieldHasActiveFrom(ctx context.Context, fieldID uuid.UUID, from reservation.Date) (bool, error)
}
