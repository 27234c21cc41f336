package field

import "errors"

var ErrInvalidCategory = errors.New("invalid field category")

// Category is the closed size classification of a field. Clients
// historically speak in squad sizes (F5/F7/F11), which parse to the
// same three values.
type Category string

const (
	CategorySmall  Category = "small"
	CategoryMedium Category = "medium"
	CategoryLarge  Category = "large"
)

func ParseCategory(s string) (Category, error) {
	switch s {
	case "small", "F5":
		return CategorySmall, nil
	case "medium", "F7":
		return CategoryMedium, nil
	case "large", "F11":
		return CategoryLarge, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategorySmall, CategoryMedium, CategoryLarge:
		return true
	default:
		return false
	}
}
