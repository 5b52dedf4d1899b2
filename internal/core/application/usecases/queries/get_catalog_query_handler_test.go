package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
)

type GetCatalogQueryHandlerTestSuite struct {
	marketplaceSuite
}

func (s *GetCatalogQueryHandlerTestSuite) TestHandle_StartsFromCheapestActiveProvider() {
	home := s.category("Home", true)
	plumbing := s.service(home, "Plumbing", 50000, true)
	wiring := s.service(home, "Wiring", 80000, true)
	s.service(home, "Retired", 10000, false)
	s.category("Hidden", false)

	cheap := s.user("cheap", "", user.Provider, true)
	pricey := s.user("pricey", "", user.Provider, true)
	banned := s.user("banned", "", user.Provider, false)
	s.offer(cheap, "Pune", []*catalog.Service{plumbing}, map[*catalog.Service]int64{plumbing: 42000})
	s.offer(pricey, "Pune", []*catalog.Service{plumbing}, map[*catalog.Service]int64{plumbing: 60000})
	s.offer(banned, "Pune", []*catalog.Service{plumbing, wiring}, map[*catalog.Service]int64{
		plumbing: 100, wiring: 100,
	})

	result, err := queries.NewGetCatalogQueryHandler(s.db).Handle(context.Background(), queries.NewGetCatalogQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Home", result[0].Name)
	s.Require().Len(result[0].Services, 2)

	s.Equal("Plumbing", result[0].Services[0].Name)
	s.Equal(int64(42000), result[0].Services[0].StartsFrom.Cents())
	s.Equal(int64(50000), result[0].Services[0].BasePrice.Cents())

	s.Equal("Wiring", result[0].Services[1].Name)
	s.Equal(int64(80000), result[0].Services[1].StartsFrom.Cents(), "falls back to base price")
}

func (s *GetCatalogQueryHandlerTestSuite) TestHandle_CategoryWithoutServices() {
	s.category("Garden", true)

	result, err := queries.NewGetCatalogQueryHandler(s.db).Handle(context.Background(), queries.NewGetCatalogQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.NotNil(result[0].Services)
	s.Empty(result[0].Services)
}

func (s *GetCatalogQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := queries.NewGetCatalogQueryHandler(s.db).Handle(context.Background(), queries.GetCatalogQuery{})

	s.Require().ErrorIs(err, queries.ErrGetCatalogQueryIsNotConstructed)
}

func TestGetCatalogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCatalogQueryHandlerTestSuite))
}
