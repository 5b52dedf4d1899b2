package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"forbidden wins", errors.Join(errs.NewForbiddenError("x", "CUSTOMER"), errs.NewObjectNotFoundError("booking", 1)), http.StatusForbidden, ""},
		{"not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("booking", 1)), http.StatusNotFound, "booking not found"},
		{"stale version", errs.NewVersionIsInvalidError("booking"), http.StatusConflict, ""},
		{"conflict explains", errs.NewConflictError("status", errors.New("invalid transition, allowed: IN_PROGRESS")), http.StatusBadRequest, "invalid transition, allowed: IN_PROGRESS"},
		{"http error", echo.NewHTTPError(http.StatusUnauthorized, "authentication required"), http.StatusUnauthorized, "authentication required"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := render(tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, body.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			}
		})
	}
}

func TestRender_CollectsEveryField(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("address"),
		errors.Join(
			errs.NewValueIsInvalidErrorWithCause("time_slot", errors.New(`"NIGHT" is not a valid time slot`)),
			errs.NewValueIsOutOfRangeError("rating", 9, 1, 5),
		),
	)

	status, body := render(err)

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, body.Fields)
	assert.Equal(t, map[string]string{
		"address":  "this field is required",
		"time_slot": `"NIGHT" is not a valid time slot`,
		"rating":   "must be between 1 and 5",
	}, *body.Fields)
}

func TestRender_FieldErrorHidesWrappedNotFound(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("service", errs.NewObjectNotFoundError("service", 1))

	status, body := render(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, *body.Fields, "service")
}

func TestRequestValidator_UsesJSONNames(t *testing.T) {
	type item struct {
		Price int `json:"price" validate:"min=1"`
	}
	type payload struct {
		Name  string `json:"name" validate:"required"`
		Items []item `json:"items" validate:"required,dive"`
	}

	err := NewRequestValidator().Validate(payload{Items: []item{{Price: 0}}})

	_, body := render(err)
	require.NotNil(t, body.Fields)
	assert.Contains(t, *body.Fields, "name")
	assert.Contains(t, *body.Fields, "items[0].price")
}
