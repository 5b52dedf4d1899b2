package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []booking.Event
}

func (n *recordingNotifier) Notify(_ context.Context, events []booking.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, events...)
}

func (n *recordingNotifier) Events() []booking.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]booking.Event(nil), n.events...)
}

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	db        *gorm.DB
	terminate func(context.Context) error
	notifier  *recordingNotifier
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	db, terminate, err := testdb.Postgres(context.Background())
	suite.Require().NoError(err)
	suite.db = db
	suite.terminate = terminate
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + testdb.Tables).Error)
	suite.notifier = &recordingNotifier{}
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.notifier)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.terminate != nil {
		suite.Require().NoError(suite.terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_DispatchesEventsAfterwards() {
	ctx := context.Background()
	providerID := kernel.NewUUID()
	b := suite.newBooking(&providerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))
	suite.Empty(suite.notifier.Events())

	suite.Require().NoError(uow.Commit(ctx))

	events := suite.notifier.Events()
	suite.Require().Len(events, 1)
	suite.Equal(booking.EventRequested, events[0].Kind)
	suite.True(providerID.IsEqual(events[0].Recipient))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChangesAndEvents() {
	ctx := context.Background()
	providerID := kernel.NewUUID()
	b := suite.newBooking(&providerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(suite.notifier.Events())
	_, err := suite.factory.Create().BookingRepository().Get(ctx, b.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_IsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, suite.newBooking(nil)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	var count int64
	suite.Require().NoError(suite.db.Table("bookings").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	suite.Require().ErrorIs(suite.factory.Create().Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) newBooking(providerID *kernel.UUID) *booking.Booking {
	b, err := booking.NewBooking(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), providerID,
		"Flat 4, Lake View", time.Now().AddDate(0, 0, 1), booking.Morning, time.Now(),
	)
	suite.Require().NoError(err)
	return b
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
