package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("price must be created via NewPrice")

		assert.Equal(t, expected, g.Validate(expected))
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuardEmbeddedInValueObject(t *testing.T) {
	type slot struct {
		name  string
		guard guard.ConstructorGuard
	}
	errSlot := errors.New("slot must be created via newSlot")
	newSlot := func(name string) slot {
		return slot{name: name, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newSlot("MORNING").guard.Validate(errSlot))

	var zero slot
	require.ErrorIs(t, zero.guard.Validate(errSlot), errSlot)
}
