package writerepo

import (
	"context"
	"errors"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type FieldRepository struct {
	db db.DBTX
}

func NewFieldRepository(dbtx db.DBTX) *FieldRepository {
	return &FieldRepository{db: dbtx}
}

func (r *FieldRepository) Create(ctx context.Context, f *field.Field) error {
	sql := `INSERT INTO fields (id, name, category, capacity, active)
	        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, sql, f.ID(), f.Name(), f.Category().String(), f.Capacity(), f.IsActive())
	if err != nil {
		return wrapPgError("failed to create field", err)
	}
	return nil
}

func (r *FieldRepository) Update(ctx context.Context, f *field.Field) error {
	sql := `UPDATE fields
	        SET name = $2, category = $3, capacity = $4
	        WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, f.ID(), f.Name(), f.Category().String(), f.Capacity())
	if err != nil {
		return wrapPgError("failed to update field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FieldRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	sql := `UPDATE fields SET active = FALSE WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return wrapPgError("failed to deactivate field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	return nil
}

// PostgreSQL error codes this layer cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func wrapPgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
