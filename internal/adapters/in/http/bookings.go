package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateBooking handles POST /api/v1/bookings.
func (s *Server) CreateBooking(ctx echo.Context) error {
	caller, err := requireRole(ctx, "create booking", user.Customer)
	if err != nil {
		return err
	}

	var body servers.NewBooking
	if err = bind(ctx, &body); err != nil {
		return err
	}

	serviceID, err := toKernelID(body.Service, "service")
	if err != nil {
		return err
	}
	var providerID *kernel.UUID
	if body.Provider != nil {
		id, idErr := toKernelID(*body.Provider, "provider")
		if idErr != nil {
			return idErr
		}
		providerID = &id
	}
	slot, err := booking.ParseTimeSlot(string(body.TimeSlot))
	if err != nil {
		return err
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID,
		caller.UserID,
		serviceID,
		providerID,
		body.Address,
		body.ScheduledDate.Time,
		slot,
	)
	if err != nil {
		return err
	}
	status, err := s.h.CreateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, bookingRef(bookingID, status))
}

// ListMyBookings handles GET /api/v1/bookings/mine.
func (s *Server) ListMyBookings(ctx echo.Context) error {
	caller, err := requireRole(ctx, "list own bookings", user.Customer)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerBookingsQuery(caller.UserID)
	if err != nil {
		return err
	}
	views, err := s.h.ListBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toBookings(views))
}

// ListAllBookings handles GET /api/v1/bookings/admin/all.
func (s *Server) ListAllBookings(ctx echo.Context) error {
	if _, err := requireRole(ctx, "list all bookings", user.Admin); err != nil {
		return err
	}

	views, err := s.h.ListBookings.Handle(ctx.Request().Context(), queries.NewListAllBookingsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toBookings(views))
}

// ListReviews handles GET /api/v1/bookings/admin/reviews.
func (s *Server) ListReviews(ctx echo.Context) error {
	if _, err := requireRole(ctx, "list reviews", user.Admin); err != nil {
		return err
	}

	views, err := s.h.ListReviews.Handle(ctx.Request().Context(), queries.NewListReviewsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toReviews(views))
}

// AssignProvider handles POST /api/v1/bookings/{id}/assign.
func (s *Server) AssignProvider(ctx echo.Context, id servers.Id) error {
	if _, err := requireRole(ctx, "assign provider", user.Admin); err != nil {
		return err
	}

	var body servers.Assignment
	if err := bind(ctx, &body); err != nil {
		return err
	}

	bookingID, err := toKernelID(id, "id")
	if err != nil {
		return err
	}
	providerID, err := toKernelID(body.ProviderId, "provider_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignProviderCommand(bookingID, providerID)
	if err != nil {
		return err
	}
	if err = s.h.AssignProvider.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookingRef(bookingID, booking.Assigned))
}

// ProviderBookingAction handles POST /api/v1/bookings/provider/action/{id}.
func (s *Server) ProviderBookingAction(ctx echo.Context, id servers.Id) error {
	caller, err := requireRole(ctx, "answer booking", user.Provider)
	if err != nil {
		return err
	}

	var body servers.ProviderAction
	if err = bind(ctx, &body); err != nil {
		return err
	}

	bookingID, err := toKernelID(id, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewProviderActionCommand(bookingID, caller.UserID, string(body.Action))
	if err != nil {
		return err
	}
	if err = s.h.ProviderAction.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	status := booking.Confirmed
	if cmd.Action() == commands.ActionReject {
		status = booking.Pending
	}
	return ctx.JSON(http.StatusOK, bookingRef(bookingID, status))
}

// UpdateBookingStatus handles POST /api/v1/bookings/provider/update-status/{id}.
func (s *Server) UpdateBookingStatus(ctx echo.Context, id servers.Id) error {
	caller, err := requireRole(ctx, "update booking status", user.Provider)
	if err != nil {
		return err
	}

	var body servers.StatusUpdate
	if err = bind(ctx, &body); err != nil {
		return err
	}

	bookingID, err := toKernelID(id, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateBookingStatusCommand(bookingID, caller.UserID, string(body.Status))
	if err != nil {
		return err
	}
	if err = s.h.UpdateBookingStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookingRef(bookingID, cmd.Target()))
}

// GetProviderDashboard handles GET /api/v1/bookings/provider/dashboard.
func (s *Server) GetProviderDashboard(ctx echo.Context) error {
	caller, err := requireRole(ctx, "view dashboard", user.Provider)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProviderDashboardQuery(caller.UserID)
	if err != nil {
		return err
	}
	dashboard, err := s.h.GetProviderDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.ProviderDashboard{
		Rating:   dashboard.Rating,
		Bookings: toBookings(dashboard.Bookings),
	})
}

// SubmitReview handles POST /api/v1/bookings/review/{id}.
func (s *Server) SubmitReview(ctx echo.Context, id servers.Id) error {
	caller, err := requireRole(ctx, "submit review", user.Customer)
	if err != nil {
		return err
	}

	var body servers.NewReview
	if err = bind(ctx, &body); err != nil {
		return err
	}

	bookingID, err := toKernelID(id, "id")
	if err != nil {
		return err
	}
	comment := ""
	if body.Comment != nil {
		comment = *body.Comment
	}

	cmd, err := commands.NewSubmitReviewCommand(bookingID, kernel.NewUUID(), caller.UserID, body.Rating, comment)
	if err != nil {
		return err
	}
	if err = s.h.SubmitReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusCreated)
}
