package seed_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"marketplace/internal/adapters/in/seed"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/providerrepo"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const sample = `
categories:
  - name: Cleaning
    description: Home cleaning
    services:
      - name: Deep cleaning
        base_price: 1499.50
      - name: Sofa cleaning
        base_price: 799
  - name: Plumbing
    inactive: true
    services:
      - name: Tap repair
        base_price: 249
users:
  - username: admin
    role: ADMIN
  - username: asha
    display_name: Asha K
    phone: "+91 90000 00001"
    role: customer
  - username: ravi
    display_name: Ravi Cleaners
    role: PROVIDER
    provider:
      city: Pune
      services: [Deep cleaning, Sofa cleaning]
`

type providerUoWFactory struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (f providerUoWFactory) Create() commands.ProviderUoW {
	return f.factory.Create()
}

func newLoader(db *gorm.DB) *seed.Loader {
	handler := commands.NewSetProviderServicesCommandHandler(
		providerUoWFactory{factory: postgres.NewGormUnitOfWorkFactory(db, nil)},
	)
	return seed.NewLoader(db, handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestLoader_Apply(t *testing.T) {
	db := testdb.SQLite(t)
	f, err := seed.Parse([]byte(sample))
	require.NoError(t, err)

	require.NoError(t, newLoader(db).Apply(t.Context(), f))

	assert.EqualValues(t, 2, count(t, db, &catalogrepo.CategoryDTO{}))
	assert.EqualValues(t, 3, count(t, db, &catalogrepo.ServiceDTO{}))
	assert.EqualValues(t, 3, count(t, db, &userrepo.UserDTO{}))

	var deep catalogrepo.ServiceDTO
	require.NoError(t, db.First(&deep, "id = ?", seed.ServiceID("Deep cleaning").Bytes()).Error)
	assert.EqualValues(t, 149950, deep.BasePriceCents)
	assert.True(t, deep.Active)

	var plumbing catalogrepo.CategoryDTO
	require.NoError(t, db.First(&plumbing, "name = ?", "Plumbing").Error)
	assert.False(t, plumbing.Active)

	var profile providerrepo.ProfileDTO
	require.NoError(t, db.Preload("Prices").First(&profile, "user_id = ?", seed.UserID("ravi").Bytes()).Error)
	assert.Equal(t, "Pune", profile.City)
	require.Len(t, profile.Prices, 2)
	for _, p := range profile.Prices {
		if p.ServiceID == seed.ServiceID("Deep cleaning").Bytes() {
			assert.EqualValues(t, 149950, p.PriceCents)
		} else {
			assert.EqualValues(t, 79900, p.PriceCents)
		}
	}
}

func TestLoader_Apply_IsRepeatable(t *testing.T) {
	db := testdb.SQLite(t)
	f, err := seed.Parse([]byte(sample))
	require.NoError(t, err)
	loader := newLoader(db)

	require.NoError(t, loader.Apply(t.Context(), f))
	require.NoError(t, loader.Apply(t.Context(), f))

	assert.EqualValues(t, 3, count(t, db, &catalogrepo.ServiceDTO{}))
	assert.EqualValues(t, 3, count(t, db, &userrepo.UserDTO{}))
	assert.EqualValues(t, 1, count(t, db, &providerrepo.ProfileDTO{}))
	assert.EqualValues(t, 2, count(t, db, &providerrepo.PriceDTO{}))
}

func TestLoader_Apply_PinnedUserID(t *testing.T) {
	db := testdb.SQLite(t)
	f, err := seed.Parse([]byte(`
users:
  - id: 0b8f3c52-2f5e-4f0e-9d7a-5b1d2b7e9a11
    username: pinned
    role: ADMIN
`))
	require.NoError(t, err)

	require.NoError(t, newLoader(db).Apply(t.Context(), f))

	var u userrepo.UserDTO
	require.NoError(t, db.First(&u, "username = ?", "pinned").Error)
	assert.Equal(t, "0b8f3c52-2f5e-4f0e-9d7a-5b1d2b7e9a11", u.ID.String())
}

func TestLoader_Apply_RejectsBadRows(t *testing.T) {
	tests := map[string]string{
		"unknown role": `
users:
  - username: x
    role: ROOT
`,
		"profile on customer": `
users:
  - username: x
    role: CUSTOMER
    provider:
      city: Pune
`,
		"negative price": `
categories:
  - name: C
    services:
      - name: S
        base_price: -1
`,
		"unknown offered service": `
users:
  - username: x
    role: PROVIDER
    provider:
      services: [Nope]
`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			db := testdb.SQLite(t)
			f, err := seed.Parse([]byte(raw))
			require.NoError(t, err)

			assert.Error(t, newLoader(db).Apply(t.Context(), f))
		})
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := seed.Read(path)

	require.NoError(t, err)
	require.Len(t, f.Categories, 2)
	assert.Equal(t, "Deep cleaning", f.Categories[0].Services[0].Name)
	assert.InDelta(t, 1499.50, f.Categories[0].Services[0].BasePrice, 0.001)
	require.NotNil(t, f.Users[2].Provider)
	assert.Equal(t, []string{"Deep cleaning", "Sofa cleaning"}, f.Users[2].Provider.Services)
}

func TestRead_Errors(t *testing.T) {
	_, err := seed.Read(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = seed.Parse([]byte("categories: [\n"))
	assert.Error(t, err)
}
