// Package testdb starts throwaway databases with the service schema for
// repository, query and end-to-end tests.
package testdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Tables in truncation order for Postgres suites.
const Tables = "reviews, bookings, provider_prices, provider_services, provider_profiles, " +
	"services, categories, notifications, users"

// Postgres runs a postgres:15-alpine container and migrates it. The returned
// terminate func stops the container.
func Postgres(ctx context.Context) (*gorm.DB, func(context.Context) error, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}
	terminate := func(ctx context.Context) error { return container.Terminate(ctx) }

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = terminate(ctx)
		return nil, nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		_ = terminate(ctx)
		return nil, nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		_ = terminate(ctx)
		return nil, nil, err
	}

	return db, terminate, nil
}

// SQLite opens a private in-memory database with the schema applied. It is
// closed when the test ends.
func SQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", kernel.NewUUID().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}
