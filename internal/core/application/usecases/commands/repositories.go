// Package commands contains the write operations of the marketplace.
// Every command is built through a validating constructor and executed by a
// handler that owns one unit of work: begin, mutate one aggregate, commit.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work views narrowed to what each group of handlers touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// BookingUoW serves booking transitions; catalog and users are read to
	// validate the service and the provider.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		CatalogRepoFactory
		UserRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// ProviderUoW serves provider profile changes.
	ProviderUoW interface {
		TxManager
		ProviderRepoFactory
		CatalogRepoFactory
		UserRepoFactory
	}

	ProviderUoWFactory interface {
		Create() ProviderUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
