package queries

import (
	"context"
)

type FieldQueries interface {
	// ListAll includes deactivated fields; the catalog is append-only.
	ListAll(ctx context.Context) ([]*FieldView, error)
}

type fieldQueriesImpl struct {
	store FieldReadStore
}

func NewFieldQueries(store FieldReadStore) FieldQueries {
	return &fieldQueriesImpl{store: store}
}

func (q *fieldQueriesImpl) ListAll(ctx context.Context) ([]*FieldView, error) {
	return q.store.FindAll(ctx)
}
