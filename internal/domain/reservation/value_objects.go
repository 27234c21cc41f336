package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date format")
	ErrInvalidTime  = errors.New("invalid time format")
	ErrInvalidDNI   = errors.New("DNI must be 7 or 8 digits")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyName    = errors.New("requester name cannot be empty")
	ErrEmptyPhone   = errors.New("requester phone cannot be empty")
)

// Every booking lasts exactly one hour. Variable-length bookings would
// also invalidate the start-time-only occupancy model in the
// availability calculator, so this is a constant, not configuration.
const SlotDuration = time.Hour

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Date is a calendar day with no time component. Comparisons are
// day-granular; At combines it with a Slot into a wall-clock instant.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// NewDate builds a Date in the local zone from its components. DATE
// columns scan as midnight UTC; rebuilding from the components keeps
// lead-time arithmetic in the zone the clock runs in.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func (d Date) Time() time.Time { return d.t }
func (d Date) String() string  { return d.t.Format(dateLayout) }
func (d Date) IsZero() bool    { return d.t.IsZero() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) At(s Slot) time.Time {
	return d.t.Add(time.Duration(s.minutes) * time.Minute)
}

// Slot is a time of day, stored as minutes from midnight. A slot of
// 1440 ("24:00") is a valid interval end for bookings starting at 23:00.
type Slot struct {
	minutes int
}

func ParseSlot(s string) (Slot, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return Slot{}, ErrInvalidTime
	}
	return Slot{minutes: t.Hour()*60 + t.Minute()}, nil
}

func SlotFromMinutes(m int) (Slot, error) {
	if m < 0 || m > 24*60 {
		return Slot{}, ErrInvalidTime
	}
	return Slot{minutes: m}, nil
}

func SlotAtHour(h int) Slot {
	return Slot{minutes: h * 60}
}

func (s Slot) Minutes() int { return s.minutes }

func (s Slot) Add(d time.Duration) Slot {
	return Slot{minutes: s.minutes + int(d.Minutes())}
}

func (s Slot) Before(o Slot) bool { return s.minutes < o.minutes }
func (s Slot) Equal(o Slot) bool  { return s.minutes == o.minutes }

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.minutes/60, s.minutes%60)
}

// TimeRange is the half-open interval [start, end) occupied by a booking.
type TimeRange struct {
	start Slot
	end   Slot
}

// NewRange derives the full interval from a start time; the end is
// always start + SlotDuration.
func NewRange(start Slot) TimeRange {
	return TimeRange{start: start, end: start.Add(SlotDuration)}
}

func (r TimeRange) Start() Slot { return r.start }
func (r TimeRange) End() Slot   { return r.end }

// Overlaps implements the half-open interval test: two ranges overlap
// iff s1 < e2 AND s2 < e1. A booking ending at 10:00 does not conflict
// with one starting at 10:00.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.start.minutes < o.end.minutes && o.start.minutes < r.end.minutes
}

// HourlyGrid returns the bookable start times for one day: every whole
// hour from openHour up to and including lastHour.
func HourlyGrid(openHour, lastHour int) []Slot {
	if lastHour < openHour {
		return nil
	}
	grid := make([]Slot, 0, lastHour-openHour+1)
	for h := openHour; h <= lastHour; h++ {
		grid = append(grid, SlotAtHour(h))
	}
	return grid
}

var (
	dniPattern   = regexp.MustCompile(`^\d{7,8}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Requester identifies who holds a booking. The DNI is the identity the
// one-reservation-per-day rule keys on.
type Requester struct {
	dni   string
	name  string
	phone string
	email string
}

func NewRequester(dni, name, phone, email string) (Requester, error) {
	dni = strings.TrimSpace(dni)
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if !dniPattern.MatchString(dni) {
		return Requester{}, ErrInvalidDNI
	}
	if name == "" {
		return Requester{}, ErrEmptyName
	}
	if phone == "" {
		return Requester{}, ErrEmptyPhone
	}
	if !emailPattern.MatchString(email) {
		return Requester{}, ErrInvalidEmail
	}

	return Requester{dni: dni, name: name, phone: phone, email: email}, nil
}

// ReconstructRequester rebuilds the value object from stored data
// without re-running validation.
func ReconstructRequester(dni, name, phone, email string) Requester {
	return Requester{dni: dni, name: name, phone: phone, email: email}
}

func (r Requester) DNI() string   { return r.dni }
func (r Requester) Name() string  { return r.name }
func (r Requester) Phone() string { return r.phone }
func (r Requester) Email() string { return r.email }
