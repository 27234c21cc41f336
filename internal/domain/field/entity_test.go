//go:build unit

package field_test

import (
	"strings"
	"testing"

	"github.com/jmlivon/app-canchas-futbol/internal/domain/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    field.Category
		wantErr bool
	}{
		{"small", field.CategorySmall, false},
		{"medium", field.CategoryMedium, false},
		{"large", field.CategoryLarge, false},
		{"F5", field.CategorySmall, false},
		{"F7", field.CategoryMedium, false},
		{"F11", field.CategoryLarge, false},
		{"huge", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := field.ParseCategory(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, field.ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewField(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f, err := field.NewField("Cancha Norte", field.CategorySmall, 10)
		require.NoError(t, err)
		assert.True(t, f.IsActive())
		assert.Equal(t, "Cancha Norte", f.Name())
		assert.NotEqual(t, f.ID().String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("trims name", func(t *testing.T) {
		f, err := field.NewField("  Cancha Sur  ", field.CategoryLarge, 22)
		require.NoError(t, err)
		assert.Equal(t, "Cancha Sur", f.Name())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := field.NewField("   ", field.CategorySmall, 10)
		assert.ErrorIs(t, err, field.ErrEmptyName)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := field.NewField(strings.Repeat("a", 256), field.CategorySmall, 10)
		assert.ErrorIs(t, err, field.ErrNameTooLong)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		_, err := field.NewField("Cancha", field.CategorySmall, 0)
		assert.ErrorIs(t, err, field.ErrInvalidCapacity)
	})

	t.Run("invalid category", func(t *testing.T) {
		_, err := field.NewField("Cancha", field.Category("huge"), 10)
		assert.ErrorIs(t, err, field.ErrInvalidCategory)
	})
}

func TestRename(t *testing.T) {
	f, err := field.NewField("Cancha Norte", field.CategorySmall, 10)
	require.NoError(t, err)

	require.NoError(t, f.Rename("Cancha Principal", field.CategoryMedium, 14))
	assert.Equal(t, "Cancha Principal", f.Name())
	assert.Equal(t, field.CategoryMedium, f.Category())
	assert.Equal(t, 14, f.Capacity())

	assert.ErrorIs(t, f.Rename("", field.CategoryMedium, 14), field.ErrEmptyName)
	assert.Equal(t, "Cancha Principal", f.Name(), "failed rename leaves the field unchanged")
}

func TestDeactivate(t *testing.T) {
	f, err := field.NewField("Cancha Norte", field.CategorySmall, 10)
	require.NoError(t, err)

	f.Deactivate()
	assert.False(t, f.IsActive())
}
