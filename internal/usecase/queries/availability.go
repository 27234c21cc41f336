package queries

import (
	"context"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"
	"github.com/jmlivon/app-canchas-futbol/internal/domain/reservation"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/clock"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/config"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/errs"
)

var (
	ErrInvalidDate     = errs.New("invalid or past date")
	ErrInvalidCategory = errs.New("invalid category filter")
)

type AvailabilityQueries interface {
	// ForDate computes the free hourly grid per active field. category
	// is optional ("" means all categories). Pure read, no locking: a
	// stale result is corrected by the transactional conflict check on
	// the subsequent create.
	ForDate(ctx context.Context, date string, category string) ([]*FieldAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	fields       FieldReadStore
	reservations ReservationReadStore
	clock        clock.Clock
	booking      config.BookingConfig
}

func NewAvailabilityQueries(
	fields FieldReadStore,
	reservations ReservationReadStore,
	clk clock.Clock,
	cfg config.Config,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		fields:       fields,
		reservations: reservations,
		clock:        clk,
		booking:      cfg.Booking,
	}
}

func (q *availabilityQueriesImpl) ForDate(ctx context.Context, date string, category string) ([]*FieldAvailabilityView, error) {
	day, err := reservation.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	if day.Before(reservation.DateOf(q.clock.Now())) {
		return nil, ErrInvalidDate
	}

	var filter *field.Category
	if category != "" {
		cat, err := field.ParseCategory(category)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCategory)
		}
		filter = &cat
	}

	flds, err := q.fields.FindActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	grid := reservation.HourlyGrid(q.booking.OpenHour, q.booking.LastHour)

	result := make([]*FieldAvailabilityView, 0, len(flds))
	for _, f := range flds {
		starts, err := q.reservations.ActiveStartTimes(ctx, f.ID, day)
		if err != nil {
			return nil, err
		}

		// Start-time matching is equivalent to interval occupancy here
		// because every booking spans exactly one grid slot.
		occupied := make(map[int]struct{}, len(starts))
		for _, s := range starts {
			occupied[s.Minutes()] = struct{}{}
		}

		free := make([]string, 0, len(grid))
		for _, slot := range grid {
			if _, taken := occupied[slot.Minutes()]; !taken {
				free = append(free, slot.String())
			}
		}

		result = append(result, &FieldAvailabilityView{
			ID:        f.ID,
			Name:      f.Name,
			Category:  f.Category,
			Capacity:  f.Capacity,
			FreeSlots: free,
		})
	}

	return result, nil
}
