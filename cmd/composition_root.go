package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/in/seed"
	"marketplace/internal/adapters/out/jwtauth"
	"marketplace/internal/adapters/out/metrics"
	"marketplace/internal/adapters/out/notifier"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Deps are the process-level collaborators created by main.
type Deps struct {
	Logger *slog.Logger

	// Registerer receives the service metrics.
	Registerer prometheus.Registerer

	// Publisher may be nil.
	Publisher ports.NotificationPublisher
}

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	resolver   ports.TokenResolver
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, deps Deps) (*CompositionRoot, error) {
	resolver, err := jwtauth.NewResolver(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	m := metrics.New(deps.Registerer)
	dispatcher := notifier.NewDispatcher(
		notificationrepo.NewGormNotificationRepository(gormDB),
		deps.Publisher,
		m,
		deps.Logger,
	)

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, dispatcher),
		resolver:   resolver,
		metrics:    m,
		logger:     deps.Logger,
	}, nil
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) providerUoWFactory() commands.ProviderUoWFactory {
	return FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateAssignProviderCommandHandler() commands.AssignProviderCommandHandler {
	return commands.NewAssignProviderCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateProviderActionCommandHandler() commands.ProviderActionCommandHandler {
	return commands.NewProviderActionCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateUpdateBookingStatusCommandHandler() commands.UpdateBookingStatusCommandHandler {
	return commands.NewUpdateBookingStatusCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	return commands.NewSubmitReviewCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateSetProviderServicesCommandHandler() commands.SetProviderServicesCommandHandler {
	return commands.NewSetProviderServicesCommandHandler(c.providerUoWFactory())
}

func (c *CompositionRoot) CreateSetProviderPricesCommandHandler() commands.SetProviderPricesCommandHandler {
	return commands.NewSetProviderPricesCommandHandler(c.providerUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListServiceProvidersQueryHandler() queries.ListServiceProvidersQueryHandler {
	return queries.NewListServiceProvidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProviderDashboardQueryHandler() queries.GetProviderDashboardQueryHandler {
	return queries.NewGetProviderDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReviewsQueryHandler() queries.ListReviewsQueryHandler {
	return queries.NewListReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProviderOfferingQueryHandler() queries.GetProviderOfferingQueryHandler {
	return queries.NewGetProviderOfferingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	return seed.NewLoader(c.gormDB, c.CreateSetProviderServicesCommandHandler(), c.logger)
}

// CreateEcho assembles the HTTP server with every use case wired in.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateBooking:        c.CreateCreateBookingCommandHandler(),
		AssignProvider:       c.CreateAssignProviderCommandHandler(),
		ProviderAction:       c.CreateProviderActionCommandHandler(),
		UpdateBookingStatus:  c.CreateUpdateBookingStatusCommandHandler(),
		SubmitReview:         c.CreateSubmitReviewCommandHandler(),
		SetProviderServices:  c.CreateSetProviderServicesCommandHandler(),
		SetProviderPrices:    c.CreateSetProviderPricesCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		GetCatalog:           c.CreateGetCatalogQueryHandler(),
		ListServiceProviders: c.CreateListServiceProvidersQueryHandler(),
		ListBookings:         c.CreateListBookingsQueryHandler(),
		GetProviderDashboard: c.CreateGetProviderDashboardQueryHandler(),
		ListReviews:          c.CreateListReviewsQueryHandler(),
		GetProviderOffering:  c.CreateGetProviderOfferingQueryHandler(),
		ListNotifications:    c.CreateListNotificationsQueryHandler(),
	})

	return httpin.NewEcho(server, httpin.Options{
		Resolver: c.resolver,
		Metrics:  c.metrics,
		Logger:   c.logger,
	})
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
