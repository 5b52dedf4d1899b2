package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained from it share
// the transaction started by Begin. Events raised by aggregates the
// repositories saved are handed to the Notifier after Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback is safe to defer: after a successful Commit it reports an
	// error that callers ignore.
	Rollback(ctx context.Context) error

	BookingRepository() BookingRepository
	ProviderRepository() ProviderRepository
	CatalogRepository() CatalogRepository
	UserRepository() UserRepository
	NotificationRepository() NotificationRepository
}
