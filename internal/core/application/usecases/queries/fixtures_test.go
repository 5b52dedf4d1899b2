package queries_test

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/bookingrepo"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/providerrepo"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// marketplaceSuite gives every test a fresh in-memory database and helpers
// that write rows through the real repositories.
type marketplaceSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *marketplaceSuite) SetupTest() {
	s.db = testdb.SQLite(s.T())
}

func (s *marketplaceSuite) user(username, displayName string, role user.Role, active bool) kernel.UUID {
	u, err := user.RestoreUser(kernel.NewUUID(), username, displayName, "+91 98765 43210", role, active)
	s.Require().NoError(err)
	dto := userrepo.FromDomain(u)
	s.Require().NoError(s.db.Create(&dto).Error)
	return u.ID()
}

func (s *marketplaceSuite) category(name string, active bool) kernel.UUID {
	id := kernel.NewUUID()
	s.Require().NoError(s.db.Create(&catalogrepo.CategoryDTO{
		ID:     id.Bytes(),
		Name:   name,
		Active: active,
	}).Error)
	return id
}

func (s *marketplaceSuite) service(categoryID kernel.UUID, name string, baseCents int64, active bool) *catalog.Service {
	base, err := kernel.PriceFromCents(baseCents)
	s.Require().NoError(err)
	svc, err := catalog.RestoreService(kernel.NewUUID(), categoryID, name, base, active)
	s.Require().NoError(err)
	s.Require().NoError(s.db.Create(&catalogrepo.ServiceDTO{
		ID:             svc.ID().Bytes(),
		CategoryID:     categoryID.Bytes(),
		Name:           name,
		BasePriceCents: baseCents,
		Active:         active,
	}).Error)
	return svc
}

// offer stores a profile offering services, with overrides in cents keyed by service.
func (s *marketplaceSuite) offer(
	userID kernel.UUID,
	city string,
	offered []*catalog.Service,
	overrides map[*catalog.Service]int64,
) {
	profile, err := provider.NewProfile(kernel.NewUUID(), userID, kernel.NewCity(city))
	s.Require().NoError(err)
	s.Require().NoError(profile.SetServices(offered))

	items := make([]provider.PriceItem, 0, len(overrides))
	for svc, cents := range overrides {
		price, priceErr := kernel.PriceFromCents(cents)
		s.Require().NoError(priceErr)
		items = append(items, provider.PriceItem{ServiceID: svc.ID(), Price: price})
	}
	s.Require().NoError(profile.SetPrices(items))

	repo := providerrepo.NewGormProviderRepository(s.db, noopTracker{})
	s.Require().NoError(repo.Add(context.Background(), profile))
}

// completedBooking stores a completed booking, reviewed when rating > 0.
func (s *marketplaceSuite) completedBooking(customerID, providerID, serviceID kernel.UUID, rating int, createdAt time.Time) kernel.UUID {
	var review *booking.Review
	if rating > 0 {
		r, err := booking.NewReview(kernel.NewUUID(), customerID, rating, "ok", createdAt)
		s.Require().NoError(err)
		review = r
	}
	b, err := booking.RestoreBooking(
		kernel.NewUUID(), customerID, serviceID, &providerID,
		"Sector 17", createdAt.AddDate(0, 0, 1), booking.Morning,
		booking.Completed, createdAt, review, 1,
	)
	s.Require().NoError(err)
	s.add(b)
	return b.ID()
}

func (s *marketplaceSuite) pendingBooking(customerID, serviceID kernel.UUID, createdAt time.Time) kernel.UUID {
	b, err := booking.NewBooking(
		kernel.NewUUID(), customerID, serviceID, nil,
		"Sector 17", createdAt.AddDate(0, 0, 1), booking.Evening, createdAt,
	)
	s.Require().NoError(err)
	s.add(b)
	return b.ID()
}

func (s *marketplaceSuite) add(b *booking.Booking) {
	repo := bookingrepo.NewGormBookingRepository(s.db, noopTracker{})
	s.Require().NoError(repo.Add(context.Background(), b))
}
