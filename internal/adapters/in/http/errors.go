package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// problem is what an error tree tells the client.
type problem struct {
	forbidden  bool
	notFound   string
	stale      bool
	conflicts  []string
	fields     map[string]string
	httpStatus int
	httpMsg    string
}

// ErrorHandler renders every error as servers.Error. Domain errors are joined
// trees, so all field problems of a request are reported together. Anything
// unrecognized is a 500 and is logged, never shown.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}

func render(err error) (int, servers.Error) {
	p := problem{fields: map[string]string{}}
	walk(err, p.visit)

	switch {
	case p.forbidden:
		return reply(http.StatusForbidden, "you do not have permission to perform this action", nil)
	case p.notFound != "":
		return reply(http.StatusNotFound, p.notFound+" not found", nil)
	case p.stale:
		return reply(http.StatusConflict, "the resource was changed by another request, retry", nil)
	case len(p.conflicts) > 0:
		return reply(http.StatusBadRequest, p.conflicts[0], p.fields)
	case len(p.fields) > 0:
		return reply(http.StatusBadRequest, "validation failed", p.fields)
	case p.httpStatus != 0:
		return reply(p.httpStatus, p.httpMsg, nil)
	default:
		return reply(http.StatusInternalServerError, "internal server error", nil)
	}
}

func reply(status int, message string, fields map[string]string) (int, servers.Error) {
	body := servers.Error{Code: status, Message: message}
	if len(fields) > 0 {
		body.Fields = &fields
	}
	return status, body
}

// visit records err and reports whether to look at what it wraps.
func (p *problem) visit(err error) bool {
	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
		conflict   *errs.ConflictError
		notFound   *errs.ObjectNotFoundError
		stale      *errs.VersionIsInvalidError
		forbidden  *errs.ForbiddenError
		validation validator.ValidationErrors
		httpErr    *echo.HTTPError
	)

	switch {
	case asExactly(err, &required):
		p.fields[required.ParamName] = "this field is required"
	case asExactly(err, &invalid):
		p.fields[invalid.ParamName] = causeOr(invalid.Cause, "is invalid")
	case asExactly(err, &outOfRange):
		p.fields[outOfRange.ParamName] = fmt.Sprintf("must be between %v and %v", outOfRange.Min, outOfRange.Max)
	case asExactly(err, &conflict):
		p.conflicts = append(p.conflicts, causeOr(conflict.Cause, conflict.ParamName+" conflict"))
	case asExactly(err, &notFound):
		p.notFound = notFound.ParamName
	case asExactly(err, &stale):
		p.stale = true
	case asExactly(err, &forbidden):
		p.forbidden = true
	case asExactly(err, &validation):
		for _, fe := range validation {
			p.fields[fieldPath(fe)] = validationMessage(fe)
		}
	case asExactly(err, &httpErr):
		p.httpStatus = httpErr.Code
		p.httpMsg = fmt.Sprint(httpErr.Message)
	default:
		return true
	}
	return false
}

// asExactly is errors.As limited to err itself, so a walk matches each node once.
func asExactly[T error](err error, target *T) bool {
	t, ok := err.(T) //nolint:errorlint // the walk does the unwrapping
	if ok {
		*target = t
	}
	return ok
}

func walk(err error, visit func(error) bool) {
	if err == nil || !visit(err) {
		return
	}
	switch u := err.(type) { //nolint:errorlint // manual tree walk
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			walk(inner, visit)
		}
	case interface{ Unwrap() error }:
		walk(u.Unwrap(), visit)
	}
}

func causeOr(cause error, fallback string) string {
	if cause == nil {
		return fallback
	}
	return cause.Error()
}

var errMissingID = errors.New("must not be empty")
