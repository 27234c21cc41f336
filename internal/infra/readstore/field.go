package readstore

import (
	"context"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/infra/db"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type FieldReadStore struct {
	db db.DBTX
}

func NewFieldReadStore(dbtx db.DBTX) *FieldReadStore {
	return &FieldReadStore{db: dbtx}
}

const fieldColumns = `id, name, category, capacity, active, created_at`

func (s *FieldReadStore) FindActive(ctx context.Context, category *field.Category) ([]*queries.FieldView, error) {
	sql := `SELECT ` + fieldColumns + `
	        FROM fields
	        WHERE active
	          AND ($1::text IS NULL OR category = $1)
	        ORDER BY category, name`

	var filter *string
	if category != nil {
		v := category.String()
		filter = &v
	}

	rows, err := s.db.Query(ctx, sql, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active fields", err)
	}
	defer rows.Close()

	return scanFieldViews(rows)
}

func (s *FieldReadStore) FindAll(ctx context.Context) ([]*queries.FieldView, error) {
	sql := `SELECT ` + fieldColumns + `
	        FROM fields
	        ORDER BY category, name`

	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fields", err)
	}
	defer rows.Close()

	return scanFieldViews(rows)
}

func scanFieldViews(rows pgx.Rows) ([]*queries.FieldView, error) {
	var result []*queries.FieldView
	for rows.Next() {
		var v queries.FieldView
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.Capacity, &v.Active, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan field row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read field rows", err)
	}
	return result, nil
}
