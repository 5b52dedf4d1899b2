package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ProviderAndNotificationQueriesTestSuite struct {
	marketplaceSuite
}

func (s *ProviderAndNotificationQueriesTestSuite) TestProviderOffering_InListedOrder() {
	home := s.category("Home", true)
	wiring := s.service(home, "Wiring", 80000, true)
	plumbing := s.service(home, "Plumbing", 50000, true)
	providerID := s.user("fixit", "", user.Provider, true)
	s.offer(providerID, "Pune", []*catalog.Service{wiring, plumbing}, map[*catalog.Service]int64{plumbing: 45000})

	result, err := s.offering(providerID)

	s.Require().NoError(err)
	s.Equal("Pune", result.City)
	s.Require().Len(result.Services, 2)
	s.Equal("Wiring", result.Services[0].ServiceName)
	s.Equal(int64(80000), result.Services[0].Price.Cents())
	s.Equal("Plumbing", result.Services[1].ServiceName)
	s.Equal(int64(45000), result.Services[1].Price.Cents())
	s.Equal(int64(50000), result.Services[1].BasePrice.Cents())
}

func (s *ProviderAndNotificationQueriesTestSuite) TestProviderOffering_NoProfileYet() {
	providerID := s.user("fresh", "", user.Provider, true)

	result, err := s.offering(providerID)

	s.Require().NoError(err)
	s.Empty(result.City)
	s.Empty(result.Services)
}

func (s *ProviderAndNotificationQueriesTestSuite) TestProviderOffering_NotAProvider() {
	customer := s.user("asha", "", user.Customer, true)

	_, err := s.offering(customer)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = s.offering(kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ProviderAndNotificationQueriesTestSuite) TestListNotifications_OwnNewestFirst() {
	ctx := context.Background()
	me, someone := kernel.NewUUID(), kernel.NewUUID()
	repo := notificationrepo.NewGormNotificationRepository(s.db)
	t0 := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	for i, msg := range []string{"first", "second"} {
		n, err := notification.NewNotification(kernel.NewUUID(), me, msg, t0.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(err)
		s.Require().NoError(repo.Add(ctx, n))
	}
	foreign, err := notification.NewNotification(kernel.NewUUID(), someone, "not yours", t0)
	s.Require().NoError(err)
	s.Require().NoError(repo.Add(ctx, foreign))

	changed, err := repo.MarkAllRead(ctx, me)
	s.Require().NoError(err)
	s.Equal(int64(2), changed)

	query, err := queries.NewListNotificationsQuery(me)
	s.Require().NoError(err)
	result, err := queries.NewListNotificationsQueryHandler(s.db).Handle(ctx, query)

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal("second", result[0].Message)
	s.Equal("first", result[1].Message)
	s.True(result[0].Read)
	s.True(result[0].CreatedAt.Equal(t0.Add(time.Minute)))
}

func (s *ProviderAndNotificationQueriesTestSuite) offering(userID kernel.UUID) (queries.ProviderOffering, error) {
	query, err := queries.NewGetProviderOfferingQuery(userID)
	s.Require().NoError(err)
	return queries.NewGetProviderOfferingQueryHandler(s.db).Handle(context.Background(), query)
}

func TestProviderAndNotificationQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderAndNotificationQueriesTestSuite))
}
