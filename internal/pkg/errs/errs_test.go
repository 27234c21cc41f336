//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jmlivon/app-canchas-futbol/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("slot unavailable")
	cause := errs.New("duplicate key")

	t.Run("mark is visible to the standard errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.True(t, errors.Is(err, sentinel))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("message stays the cause's", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", errs.Mark(cause, sentinel))
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("nil cause collapses to the mark", func(t *testing.T) {
		assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrap(t *testing.T) {
	require.NoError(t, errs.Wrap(nil, "ignored"))

	cause := errs.New("boom")
	err := errs.Wrap(cause, "context")
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "context")
}
