package http

import (
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/generated/servers"
)

// Handlers bundles the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateBooking        commands.CreateBookingCommandHandler
	AssignProvider       commands.AssignProviderCommandHandler
	ProviderAction       commands.ProviderActionCommandHandler
	UpdateBookingStatus  commands.UpdateBookingStatusCommandHandler
	SubmitReview         commands.SubmitReviewCommandHandler
	SetProviderServices  commands.SetProviderServicesCommandHandler
	SetProviderPrices    commands.SetProviderPricesCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler

	// Query handlers
	GetCatalog           queries.GetCatalogQueryHandler
	ListServiceProviders queries.ListServiceProvidersQueryHandler
	ListBookings         queries.ListBookingsQueryHandler
	GetProviderDashboard queries.GetProviderDashboardQueryHandler
	ListReviews          queries.ListReviewsQueryHandler
	GetProviderOffering  queries.GetProviderOfferingQueryHandler
	ListNotifications    queries.ListNotificationsQueryHandler
}

// Server implements servers.ServerInterface on top of the application use
// cases. Errors are returned as is and rendered by ErrorHandler.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}
