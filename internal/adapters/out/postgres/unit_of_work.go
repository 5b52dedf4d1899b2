// Package postgres implements the unit of work over GORM transactions and
// hosts the connection and schema helpers shared by the repositories.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, dispatcher)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.BookingRepository().Update(ctx, b); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Aggregates saved through the repositories are tracked; after a successful
// Commit their pending domain events go to the notifier. A rolled back unit of
// work drops them.
package postgres

import (
	"context"

	"marketplace/internal/adapters/out/postgres/bookingrepo"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/providerrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is an aggregate with pending domain events.
type eventSource interface {
	PullEvents() []booking.Event
}

type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	notifier ports.Notifier
}

// NewGormUnitOfWorkFactory creates the factory. notifier may be nil, in which
// case events are discarded.
func NewGormUnitOfWorkFactory(db *gorm.DB, notifier ports.Notifier) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:       db,
		notifier: notifier,
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		notifier:          f.notifier,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is one transaction. It is not safe for concurrent use; each
// command creates its own.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	notifier          ports.Notifier
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes durable and then hands the tracked aggregates'
// events to the notifier.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.dispatchEvents(ctx)
	return nil
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProviderRepository() ports.ProviderRepository {
	return providerrepo.NewGormProviderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn is the open transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) dispatchEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	var events []booking.Event
	for _, t := range tracked {
		if src, ok := t.Aggregate.(eventSource); ok {
			events = append(events, src.PullEvents()...)
		}
	}

	if len(events) == 0 || uow.notifier == nil {
		return
	}
	uow.notifier.Notify(ctx, events)
}
