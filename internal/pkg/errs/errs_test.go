package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("booking", "123")

		assert.Equal(t, "booking", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: booking 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: record not found)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("notification", 456)
		assert.Equal(t, "object not found: notification 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("time_slot")

		assert.Equal(t, "time_slot", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: time_slot", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid service for this provider")
		err := errs.NewValueIsInvalidErrorWithCause("service_id", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: service_id (cause: invalid service for this provider)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 6 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("rating", 0, 1, 5, cause)

		assert.Equal(t,
			"value is invalid: 0 is rating, min value is 1, max value is 5 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("address")

	assert.Equal(t, "value is required: address", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("address", errors.New("blank"))
	assert.Equal(t, "value is required: address (cause: blank)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("booking")

		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: booking", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("booking", errors.New("stale version 3"))

		assert.Equal(t, "version is invalid: booking (cause: stale version 3)", err.Error())
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("assign provider", "CUSTOMER")

	assert.Equal(t, "operation is forbidden: assign provider is not allowed for role CUSTOMER", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestConflictError(t *testing.T) {
	t.Run("matches sentinel and cause", func(t *testing.T) {
		cause := errors.New("cannot update status from PENDING")
		err := errs.NewConflictError("status", cause)

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "state conflict: status (cause: cannot update status from PENDING)", err.Error())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewConflictError("review", nil)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "state conflict: review", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	var notFound *errs.ObjectNotFoundError
	wrapped := errors.Join(errors.New("outer"), errs.NewObjectNotFoundError("booking", "1"))

	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "booking", notFound.ParamName)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 9, 1, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("service"), errs.ErrValueIsRequired)
}
