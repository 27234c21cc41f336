package writerepo

import (
	"context"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, rsv *reservation.Reservation) error {
	sql := `INSERT INTO reservations
	            (id, dni, requester_name, phone, email, field_id, date, start_min, end_min, status)
	        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	req := rsv.Requester()
	_, err := r.db.Exec(ctx, sql,
		rsv.ID(), req.DNI(), req.Name(), req.Phone(), req.Email(),
		rsv.FieldID(), rsv.Date().Time(),
		rsv.Slot().Start().Minutes(), rsv.Slot().End().Minutes(),
		rsv.Status().String(),
	)
	if err != nil {
		return wrapPgError("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	sql := `UPDATE reservations SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, id, status.String())
	if err != nil {
		return wrapPgError("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Reassign(ctx context.Context, id uuid.UUID, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange) error {
	sql := `UPDATE reservations
	        SET field_id = $2, date = $3, start_min = $4, end_min = $5
	        WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, id, fieldID, date.Time(), slot.Start().Minutes(), slot.End().Minutes())
	if err != nil {
		return wrapPgError("failed to reassign reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
