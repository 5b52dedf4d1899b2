package postgres

import (
	"marketplace/internal/adapters/out/postgres/bookingrepo"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/providerrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ServiceDTO{},
		&providerrepo.ProfileDTO{},
		&providerrepo.ServiceDTO{},
		&providerrepo.PriceDTO{},
		&bookingrepo.BookingDTO{},
		&bookingrepo.ReviewDTO{},
		&notificationrepo.NotificationDTO{},
	}
}

// Migrate creates or extends the schema. It works on both Postgres and SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
