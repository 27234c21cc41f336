package field

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("field name cannot be empty")
	ErrNameTooLong     = errors.New("field name is too long (max 255 characters)")
	ErrInvalidCapacity = errors.New("field capacity must be positive")
)

const MaxNameLength = 255

// Field is a bookable pitch. Deactivated fields stay in the store so
// historical reservations keep a valid reference; they are simply
// excluded from availability and from new bookings.
type Field struct {
	id        uuid.UUID
	name      string
	category  Category
	capacity  int
	active    bool
	createdAt time.Time
}

func NewField(name string, category Category, capacity int) (*Field, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Field{
		id:       uuid.New(),
		name:     name,
		category: category,
		capacity: capacity,
		active:   true,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, category Category, capacity int, active bool, createdAt time.Time) *Field {
	return &Field{
		id:        id,
		name:      name,
		category:  category,
		capacity:  capacity,
		active:    active,
		createdAt: createdAt,
	}
}

func (f *Field) Rename(name string, category Category, capacity int) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	f.name = name
	f.category = category
	f.capacity = capacity
	return nil
}

func (f *Field) Deactivate() {
	f.active = false
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (f *Field) ID() uuid.UUID        { return f.id }
func (f *Field) Name() string         { return f.name }
func (f *Field) Category() Category   { return f.category }
func (f *Field) Capacity() int        { return f.capacity }
func (f *Field) IsActive() bool       { return f.active }
func (f *Field) CreatedAt() time.Time { return f.createdAt }
