package providerrepo_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres/providerrepo"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type ProviderRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *gorm.DB
	terminate  func(context.Context) error
	repository *providerrepo.GormProviderRepository
}

func (suite *ProviderRepositoryIntegrationTestSuite) SetupSuite() {
	db, terminate, err := testdb.Postgres(context.Background())
	suite.Require().NoError(err)
	suite.db = db
	suite.terminate = terminate
}

func (suite *ProviderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + testdb.Tables).Error)
	suite.repository = providerrepo.NewGormProviderRepository(suite.db, noopTracker{})
}

func (suite *ProviderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.terminate != nil {
		suite.Require().NoError(suite.terminate(context.Background()))
	}
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestAddUpdateGet_KeepsPricesInSync() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	plumbing, wiring, painting := suite.service(50000), suite.service(80000), suite.service(30000)

	profile, err := provider.NewProfile(kernel.NewUUID(), userID, kernel.NewCity("Pune"))
	suite.Require().NoError(err)
	suite.Require().NoError(profile.SetServices([]*catalog.Service{plumbing, wiring}))
	suite.Require().NoError(profile.SetPrices([]provider.PriceItem{
		{ServiceID: wiring.ID(), Price: suite.cents(75000)},
	}))
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	loaded, err := suite.repository.GetByUserID(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{plumbing.ID(), wiring.ID()}, loaded.Services())
	price, ok := loaded.PriceFor(wiring.ID())
	suite.Require().True(ok)
	suite.Equal(int64(75000), price.Cents())

	suite.Require().NoError(loaded.SetServices([]*catalog.Service{wiring, painting}))
	loaded.SetCity(kernel.NewCity("Mumbai"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.GetByUserID(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal("Mumbai", reloaded.City().String())
	suite.Equal(int64(2), reloaded.Version())
	suite.Len(reloaded.Prices(), 2)
	_, ok = reloaded.PriceFor(plumbing.ID())
	suite.False(ok)
	price, _ = reloaded.PriceFor(wiring.ID())
	suite.Equal(int64(75000), price.Cents())
	price, _ = reloaded.PriceFor(painting.ID())
	suite.Equal(int64(30000), price.Cents())
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	profile, err := provider.NewProfile(kernel.NewUUID(), userID, kernel.NewCity(""))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	first, _ := suite.repository.GetByUserID(ctx, userID)
	second, _ := suite.repository.GetByUserID(ctx, userID)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *ProviderRepositoryIntegrationTestSuite) TestGetByUserID_Missing() {
	_, err := suite.repository.GetByUserID(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProviderRepositoryIntegrationTestSuite) service(baseCents int64) *catalog.Service {
	s, err := catalog.NewService(kernel.NewUUID(), kernel.NewUUID(), "Service", suite.cents(baseCents))
	suite.Require().NoError(err)
	return s
}

func (suite *ProviderRepositoryIntegrationTestSuite) cents(v int64) kernel.Price {
	p, err := kernel.PriceFromCents(v)
	suite.Require().NoError(err)
	return p
}

func TestProviderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderRepositoryIntegrationTestSuite))
}
