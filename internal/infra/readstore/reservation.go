package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/infra/db"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSelect = `
	SELECT r.id, r.dni, r.requester_name, r.phone, r.email,
	       r.field_id, f.name, f.category,
	       r.date, r.start_min, r.end_min, r.status, r.created_at
	FROM reservations r
	JOIN fields f ON f.id = r.field_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewSelect+` WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) ListAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewSelect+` ORDER BY r.date DESC, r.start_min DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

func (s *ReservationReadStore) ActiveStartTimes(ctx context.Context, fieldID uuid.UUID, date reservation.Date) ([]reservation.Slot, error) {
	sql := `SELECT start_min
	        FROM reservations
	        WHERE field_id = $1 AND date = $2 AND status = $3
	        ORDER BY start_min`

	rows, err := s.db.Query(ctx, sql, fieldID, date.Time(), reservation.StatusActive.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied start times", err)
	}
	defer rows.Close()

	var result []reservation.Slot
	for rows.Next() {
		var minutes int
		if err := rows.Scan(&minutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan start time", err)
		}
		slot, err := reservation.SlotFromMinutes(minutes)
		if err != nil {
			return nil, infra.WrapRepoErr("stored start time out of range", err)
		}
		result = append(result, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read start time rows", err)
	}
	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v        queries.ReservationView
		date     time.Time
		startMin int
		endMin   int
	)
	err := row.Scan(
		&v.ID, &v.DNI, &v.RequesterName, &v.Phone, &v.Email,
		&v.FieldID, &v.FieldName, &v.FieldCategory,
		&date, &startMin, &endMin, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Date = reservation.NewDate(date.Date()).String()
	start, err := reservation.SlotFromMinutes(startMin)
	if err != nil {
		return nil, err
	}
	end, err := reservation.SlotFromMinutes(endMin)
	if err != nil {
		return nil, err
	}
	v.StartTime = start.String()
	v.EndTime = end.String()
	return &v, nil
}
