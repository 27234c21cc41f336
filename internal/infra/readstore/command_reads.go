package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/infra/db"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads serves the write-side lookups. It runs over DBTX so the
// same implementation works on the pool and inside a transaction.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (s *CommandReads) FieldByID(ctx context.Context, id uuid.UUID) (*shared.FieldSnapshot, error) {
	sql := `SELECT id, name, category, capacity, active
	        FROM fields
	        WHERE id = $1`

	var (
		snap     shared.FieldSnapshot
		category string
	)
	err := s.db.QueryRow(ctx, sql, id).Scan(&snap.ID, &snap.Name, &category, &snap.Capacity, &snap.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find field by ID", err)
	}
	snap.Category = field.Category(category)
	return &snap, nil
}

const reservationSnapshotSelect = `
	SELECT id, dni, requester_name, phone, email,
	       field_id, date, start_min, status, created_at
	FROM reservations`

func (s *CommandReads) ActiveReservation(ctx context.Context, dni string, date reservation.Date, start reservation.Slot) (*shared.ReservationSnapshot, error) {
	row := s.db.QueryRow(ctx,
		reservationSnapshotSelect+` WHERE dni = $1 AND date = $2 AND start_min = $3 AND status = $4`,
		dni, date.Time(), start.Minutes(), reservation.StatusActive.String(),
	)
	return scanReservationSnapshot(row)
}

func (s *CommandReads) ActiveReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row := s.db.QueryRow(ctx,
		reservationSnapshotSelect+` WHERE id = $1 AND status = $2`,
		id, reservation.StatusActive.String(),
	)
	return scanReservationSnapshot(row)
}

func (s *CommandReads) HasActiveOnDate(ctx context.Context, dni string, date reservation.Date, exclude *uuid.UUID) (bool, error) {
	sql := `SELECT EXISTS(
	            SELECT 1 FROM reservations
	            WHERE dni = $1 AND date = $2 AND status = $3
	              AND ($4::uuid IS NULL OR id <> $4)
	        )`

	var exists bool
	err := s.db.QueryRow(ctx, sql, dni, date.Time(), reservation.StatusActive.String(), exclude).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check daily reservation", err)
	}
	return exists, nil
}

func (s *CommandReads) HasOverlap(ctx context.Context, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange, exclude *uuid.UUID) (bool, error) {
	// Half-open interval test pushed into SQL: s1 < e2 AND s2 < e1.
	sql := `SELECT EXISTS(
	            SELECT 1 FROM reservations
	            WHERE field_id = $1 AND date = $2 AND status = $3
	              AND start_min < $5 AND end_min > $4
	              AND ($6::uuid IS NULL OR id <> $6)
	        )`

	var exists bool
	err := s.db.QueryRow(ctx, sql,
		fieldID, date.Time(), reservation.StatusActive.String(),
		slot.Start().Minutes(), slot.End().Minutes(), exclude,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot overlap", err)
	}
	return exists, nil
}

func (s *CommandReads) ActiveFieldNameExists(ctx context.Context, name string, category field.Category) (bool, error) {
	sql := `SELECT EXISTS(
	            SELECT 1 FROM fields
	            WHERE name = $1 AND category = $2 AND active
	        )`

	var exists bool
	err := s.db.QueryRow(ctx, sql, name, category.String()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check field name uniqueness", err)
	}
	return exists, nil
}

func (s *CommandReads) FieldHasActiveFrom(ctx context.Context, fieldID uuid.UUID, from reservation.Date) (bool, error) {
	sql := `SELECT EXISTS(
	            SELECT 1 FROM reservations
	            WHERE field_id = $1 AND date >= $2 AND status = $3
	        )`

	var exists bool
	err := s.db.QueryRow(ctx, sql, fieldID, from.Time(), reservation.StatusActive.String()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check upcoming reservations", err)
	}
	return exists, nil
}

func scanReservationSnapshot(row pgx.Row) (*shared.ReservationSnapshot, error) {
	var (
		snap     shared.ReservationSnapshot
		date     time.Time
		startMin int
		status   string
	)
	err := row.Scan(
		&snap.ID, &snap.DNI, &snap.Name, &snap.Phone, &snap.Email,
		&snap.FieldID, &date, &startMin, &status, &snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	snap.Date = reservation.NewDate(date.Date())
	start, err := reservation.SlotFromMinutes(startMin)
	if err != nil {
		return nil, infra.WrapRepoErr("stored start time out of range", err)
	}
	snap.Start = start
	snap.Status = reservation.Status(status)
	return &snap, nil
}
