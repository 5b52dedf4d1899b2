package http

import (
	"net/http"
	"slices"
	"strings"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalKey = "marketplace.principal"

// Authenticate resolves a bearer token when one is sent. Requests without a
// token pass through anonymous; operations that need a caller reject them in
// requireRole. A token that does not resolve is always a 401.
func Authenticate(resolver ports.TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			principal, err := resolver.Resolve(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// requireRole returns the caller if it has one of the roles.
func requireRole(c echo.Context, operation string, roles ...user.Role) (ports.Principal, error) {
	principal, ok := c.Get(principalKey).(ports.Principal)
	if !ok {
		return ports.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if len(roles) > 0 && !slices.Contains(roles, principal.Role) {
		return ports.Principal{}, errs.NewForbiddenError(operation, principal.Role.String())
	}
	return principal, nil
}
