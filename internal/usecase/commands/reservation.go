package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"
	"github.com/jmlivon/app-canchas-futbol/internal/infra"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/clock"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/config"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/errs"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation          = errs.New("validation failed")
	ErrInvalidDate         = errs.New("cannot book a past date")
	ErrDuplicateBooking    = errs.New("requester already has a reservation for that date")
	ErrSlotUnavailable     = errs.New("the requested slot is not available")
	ErrWindowClosed        = errs.New("changes require more than the minimum lead time")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrFieldNotFound       = errs.New("field not found")
	ErrFieldInactive       = errs.New("field is not active")
	ErrStorage             = errs.New("storage operation failed")
)

type CreateReservationInput struct {
	DNI       string
	Name      string
	Phone     string
	Email     string
	FieldID   uuid.UUID
	Date      string
	StartTime string
}

type CancelReservationInput struct {
	DNI       string
	Date      string
	StartTime string
}

type RescheduleInput struct {
	DNI          string
	CurrentDate  string
	CurrentStart string
	NewDate      string
	NewStart     string
	// FieldID optionally moves the booking to another field; nil keeps
	// the current one.
	FieldID *uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, in CancelReservationInput) error
	Reschedule(ctx context.Context, in RescheduleInput) error
	// CancelByID is the admin override: no lead-time window applies.
	CancelByID(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	views   queries.ReservationQueries
	clock   clock.Clock
	booking config.BookingConfig
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	views queries.ReservationQueries,
	clk clock.Clock,
	cfg config.Config,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		views:   views,
		clock:   clk,
		booking: cfg.Booking,
	}
}

// Create runs the duplicate check, the conflict check, and the insert
// as one transaction. The partial unique indexes on the reservations
// table are the backstop for races the in-transaction checks cannot
// see under read committed.
func (c *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (*queries.ReservationView, error) {
	requester, err := reservation.NewRequester(in.DNI, in.Name, in.Phone, in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	date, err := reservation.ParseDate(in.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	start, err := reservation.ParseSlot(in.StartTime)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if in.FieldID == uuid.Nil {
		return nil, ErrValidation
	}

	entity, err := reservation.NewReservation(requester, in.FieldID, date, start, c.clock.Now())
	if err != nil {
		if errors.Is(err, reservation.ErrPastDate) {
			return nil, errs.Mark(err, ErrInvalidDate)
		}
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fld, err := tx.Reads().FieldByID(ctx, in.FieldID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrFieldNotFound
			}
			return errs.Mark(err, ErrStorage)
		}
		if !fld.Active {
			return ErrFieldInactive
		}

		booked, err := tx.Reads().HasActiveOnDate(ctx, requester.DNI(), date, nil)
		if err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if booked {
			return ErrDuplicateBooking
		}

		conflict, err := tx.Reads().HasOverlap(ctx, in.FieldID, date, entity.Slot(), nil)
		if err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if conflict {
			return ErrSlotUnavailable
		}

		if err := tx.Reservations().Create(ctx, entity); err != nil {
			return mapWriteConflict(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.views.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStorage)
	}
	return view, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, in CancelReservationInput) error {
	dni, date, start, err := parseLookupKey(in.DNI, in.Date, in.StartTime)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ActiveReservation(ctx, dni, date, start)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorage)
		}

		entity := snap.Entity()
		if err := entity.Cancel(c.clock.Now(), c.booking.CancelLeadHours); err != nil {
			return errs.Mark(err, ErrWindowClosed)
		}

		if err := tx.Reservations().SetStatus(ctx, snap.ID, reservation.StatusCancelled); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

func (c *reservationCommandsImpl) Reschedule(ctx context.Context, in RescheduleInput) error {
	dni, curDate, curStart, err := parseLookupKey(in.DNI, in.CurrentDate, in.CurrentStart)
	if err != nil {
		return err
	}
	newDate, err := reservation.ParseDate(in.NewDate)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	newStart, err := reservation.ParseSlot(in.NewStart)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ActiveReservation(ctx, dni, curDate, curStart)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorage)
		}

		// Window is measured against the slot being vacated, before
		// any other rule runs.
		entity := snap.Entity()
		now := c.clock.Now()
		if err := entity.EnsureChangeable(now, c.booking.CancelLeadHours); err != nil {
			return errs.Mark(err, ErrWindowClosed)
		}

		booked, err := tx.Reads().HasActiveOnDate(ctx, dni, newDate, &snap.ID)
		if err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if booked {
			return ErrDuplicateBooking
		}

		targetField := snap.FieldID
		if in.FieldID != nil {
			fld, err := tx.Reads().FieldByID(ctx, *in.FieldID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrFieldNotFound
				}
				return errs.Mark(err, ErrStorage)
			}
			if !fld.Active {
				return ErrFieldInactive
			}
			targetField = fld.ID
		}

		if err := entity.Reassign(targetField, newDate, newStart, now, c.booking.CancelLeadHours); err != nil {
			return errs.Mark(err, ErrWindowClosed)
		}

		conflict, err := tx.Reads().HasOverlap(ctx, targetField, newDate, entity.Slot(), &snap.ID)
		if err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if conflict {
			return ErrSlotUnavailable
		}

		if err := tx.Reservations().Reassign(ctx, snap.ID, targetField, newDate, entity.Slot()); err != nil {
			return mapWriteConflict(err)
		}
		return nil
	})
}

func (c *reservationCommandsImpl) CancelByID(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ActiveReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorage)
		}

		if err := tx.Reservations().SetStatus(ctx, snap.ID, reservation.StatusCancelled); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

func parseLookupKey(dniIn, dateIn, startIn string) (string, reservation.Date, reservation.Slot, error) {
	dni := strings.TrimSpace(dniIn)
	if dni == "" {
		return "", reservation.Date{}, reservation.Slot{}, ErrValidation
	}
	date, err := reservation.ParseDate(dateIn)
	if err != nil {
		return "", reservation.Date{}, reservation.Slot{}, errs.Mark(err, ErrValidation)
	}
	start, err := reservation.ParseSlot(startIn)
	if err != nil {
		return "", reservation.Date{}, reservation.Slot{}, errs.Mark(err, ErrValidation)
	}
	return dni, date, start, nil
}

// mapWriteConflict converts a unique-violation raised by the storage
// backstop into the business rejection the racing check would have
// produced. Anything else is an opaque storage failure.
func mapWriteConflict(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrStorage)
	}
	if strings.Contains(infra.Constraint(err), "dni") {
		return errs.Mark(err, ErrDuplicateBooking)
	}
	return errs.Mark(err, ErrSlotUnavailable)
}
