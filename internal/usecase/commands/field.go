package commands

import (
	"context"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/clock"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/errs"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateField   = errs.New("an active field with that name and category already exists")
	ErrFieldHasUpcoming = errs.New("field has upcoming reservations")
)

type CreateFieldInput struct {
	Name     string
	Category string
	Capacity int
}

type UpdateFieldInput struct {
	Name     string
	Category string
	Capacity int
}

type FieldCommands interface {
	Create(ctx context.Context, in CreateFieldInput) (uuid.UUID, error)
	// Update is rejected while the field holds future active
	// reservations; their slots were sold against the current shape.
	Update(ctx context.Context, id uuid.UUID, in UpdateFieldInput) error
	// Deactivate soft-deletes: the row stays so historical
	// reservations keep a valid reference.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type fieldCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFieldCommands(uow shared.UnitOfWork, clk clock.Clock) FieldCommands {
	return &fieldCommandsImpl{uow: uow, clock: clk}
}

func (c *fieldCommandsImpl) Create(ctx context.Context, in CreateFieldInput) (uuid.UUID, error) {
	category, err := field.ParseCategory(in.Category)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	entity, err := field.NewField(in.Name, category, in.Capacity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Uniqueness is scoped to active fields: a deactivated
		// namesake does not block creation.
		exists, err := tx.Reads().ActiveFieldNameExists(ctx, entity.Name(), entity.Category())
		if err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if exists {
			return ErrDuplicateField
		}

		if err := tx.Fields().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateField)
			}
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (c *fieldCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateFieldInput) error {
	category, err := field.ParseCategory(in.Category)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().FieldByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrFieldNotFound
			}
			return errs.Mark(err, ErrStorage)
		}

		today := reservation.DateOf(c.clock.Now())
		busy, err := tx.Reads().FieldHasActiveFrom(ctx, id, today)
		if err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if busy {
			return ErrFieldHasUpcoming
		}

		entity := field.Reconstruct(snap.ID, snap.Name, snap.Category, snap.Capacity, snap.Active, c.clock.Now())
		if err := entity.Rename(in.Name, category, in.Capacity); err != nil {
			return errs.Mark(err, ErrValidation)
		}

		// A rename can collide with the active (name, category) index
		// just like a create.
		if err := tx.Fields().Update(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateField)
			}
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

func (c *fieldCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().FieldByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrFieldNotFound
			}
			return errs.Mark(err, ErrStorage)
		}

		if err := tx.Fields().Deactivate(ctx, id); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}
