package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	caller, err := requireRole(ctx, "list notifications")
	if err != nil {
		return err
	}

	query, err := queries.NewListNotificationsQuery(caller.UserID)
	if err != nil {
		return err
	}
	views, err := s.h.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toNotifications(views))
}

// MarkNotificationRead handles POST /api/v1/notifications/{id}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, id servers.Id) error {
	caller, err := requireRole(ctx, "mark notification read")
	if err != nil {
		return err
	}

	notificationID, err := toKernelID(id, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, caller.UserID)
	if err != nil {
		return err
	}
	if err = s.h.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	caller, err := requireRole(ctx, "mark notifications read")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(caller.UserID)
	if err != nil {
		return err
	}
	if err = s.h.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
