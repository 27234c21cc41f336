//go:build unit

package commands_test

import (
	"context"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the persistence layer. It
// backs the unit of work, the command reads and the read-side queries
// so command tests exercise the full check-then-write path.
type fakeStore struct {
	fields       map[uuid.UUID]*shared.FieldSnapshot
	reservations map[uuid.UUID]*shared.ReservationSnapshot

	createReservationErr error
	createFieldErr       error
	updateFieldErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		fields:       make(map[uuid.UUID]*shared.FieldSnapshot),
		reservations: make(map[uuid.UUID]*shared.ReservationSnapshot),
	}
}

func (s *fakeStore) addField(name string, category field.Category, active bool) uuid.UUID {
	id := uuid.New()
	s.fields[id] = &shared.FieldSnapshot{
		ID:       id,
		Name:     name,
		Category: category,
		Capacity: 10,
		Active:   active,
	}
	return id
}

// --- shared.CommandReads ---

func (s *fakeStore) FieldByID(_ context.Context, id uuid.UUID) (*shared.FieldSnapshot, error) {
	f, ok := s.fields[id]
	if !ok {
		return nil, infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	cp := *f
	return &cp, nil
}

func (s *fakeStore) ActiveReservation(_ context.Context, dni string, date reservation.Date, start reservation.Slot) (*shared.ReservationSnapshot, error) {
	for _, r := range s.reservations {
		if r.Status == reservation.StatusActive && r.DNI == dni && r.Date.Equal(date) && r.Start.Equal(start) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (s *fakeStore) ActiveReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r, ok := s.reservations[id]
	if !ok || r.Status != reservation.StatusActive {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	cp := *r
	return &cp, nil
}

func (s *fakeStore) HasActiveOnDate(_ context.Context, dni string, date reservation.Date, exclude *uuid.UUID) (bool, error) {
	for _, r := range s.reservations {
		if exclude != nil && r.ID == *exclude {
			continue
		}
		if r.Status == reservation.StatusActive && r.DNI == dni && r.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) HasOverlap(_ context.Context, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange, exclude *uuid.UUID) (bool, error) {
	for _, r := range s.reservations {
		if exclude != nil && r.ID == *exclude {
			continue
		}
		if r.Status != reservation.StatusActive || r.FieldID != fieldID || !r.Date.Equal(date) {
			continue
		}
		if reservation.NewRange(r.Start).Overlaps(slot) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) ActiveFieldNameExists(_ context.Context, name string, category field.Category) (bool, error) {
	for _, f := range s.fields {
		if f.Active && f.Name == name && f.Category == category {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) FieldHasActiveFrom(_ context.Context, fieldID uuid.UUID, from reservation.Date) (bool, error) {
	for _, r := range s.reservations {
		if r.Status == reservation.StatusActive && r.FieldID == fieldID && !r.Date.Before(from) {
			return true, nil
		}
	}
	return false, nil
}

// --- shared.ReservationRepository ---

func (s *fakeStore) Create(_ context.Context, r *reservation.Reservation) error {
	if s.createReservationErr != nil {
		return s.createReservationErr
	}
	req := r.Requester()
	s.reservations[r.ID()] = &shared.ReservationSnapshot{
		ID:        r.ID(),
		DNI:       req.DNI(),
		Name:      req.Name(),
		Phone:     req.Phone(),
		Email:     req.Email(),
		FieldID:   r.FieldID(),
		Date:      r.Date(),
		Start:     r.Slot().Start(),
		Status:    r.Status(),
		CreatedAt: r.CreatedAt(),
	}
	return nil
}

func (s *fakeStore) SetStatus(_ context.Context, id uuid.UUID, status reservation.Status) error {
	r, ok := s.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.Status = status
	return nil
}

func (s *fakeStore) Reassign(_ context.Context, id uuid.UUID, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange) error {
	r, ok := s.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.FieldID = fieldID
	r.Date = date
	r.Start = slot.Start()
	return nil
}

// fakeFieldRepo keeps field writes apart from the reservation methods
// that share the fakeStore receiver.
type fakeFieldRepo struct {
	store *fakeStore
}

func (f *fakeFieldRepo) Create(_ context.Context, fld *field.Field) error {
	if f.store.createFieldErr != nil {
		return f.store.createFieldErr
	}
	f.store.fields[fld.ID()] = &shared.FieldSnapshot{
		ID:       fld.ID(),
		Name:     fld.Name(),
		Category: fld.Category(),
		Capacity: fld.Capacity(),
		Active:   fld.IsActive(),
	}
	return nil
}

func (f *fakeFieldRepo) Update(_ context.Context, fld *field.Field) error {
	if f.store.updateFieldErr != nil {
		return f.store.updateFieldErr
	}
	snap, ok := f.store.fields[fld.ID()]
	if !ok {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	snap.Name = fld.Name()
	snap.Category = fld.Category()
	snap.Capacity = fld.Capacity()
	return nil
}

func (f *fakeFieldRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	snap, ok := f.store.fields[id]
	if !ok {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	snap.Active = false
	return nil
}

// --- shared.UnitOfWork ---

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return t.store }
func (t *fakeTx) Fields() shared.FieldRepository             { return &fakeFieldRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads                 { return t.store }

// --- queries.ReservationQueries ---

type fakeReservationQueries struct {
	store *fakeStore
}

func (q *fakeReservationQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	r, ok := q.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	var fieldName, fieldCategory string
	if f, ok := q.store.fields[r.FieldID]; ok {
		fieldName = f.Name
		fieldCategory = f.Category.String()
	}
	return &queries.ReservationView{
		ID:            r.ID,
		DNI:           r.DNI,
		RequesterName: r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		FieldID:       r.FieldID,
		FieldName:     fieldName,
		FieldCategory: fieldCategory,
		Date:          r.Date.String(),
		StartTime:     r.Start.String(),
		EndTime:       r.Start.Add(reservation.SlotDuration).String(),
		Status:        r.Status.String(),
		CreatedAt:     r.CreatedAt,
	}, nil
}

func (q *fakeReservationQueries) ListAll(ctx context.Context) ([]*queries.ReservationView, error) {
	result := make([]*queries.ReservationView, 0, len(q.store.reservations))
	for id := range q.store.reservations {
		view, err := q.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}
