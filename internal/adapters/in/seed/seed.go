// Package seed bootstraps a development database from a YAML file: catalog
// entries, accounts and provider profiles. Catalog CRUD and signup live in
// other services, so this is the only way to get data into a fresh install.
//
// Rows are keyed by ids derived from their names, so loading the same file
// twice updates instead of duplicating.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var namespace = uuid.MustParse("6f1c1a0e-8f0a-4a53-9a52-3c1b4b7e2d10")

type File struct {
	Categories []Category `yaml:"categories"`
	Users      []User     `yaml:"users"`
}

type Category struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Inactive    bool      `yaml:"inactive"`
	Services    []Service `yaml:"services"`
}

type Service struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	BasePrice   float64 `yaml:"base_price"`
	Inactive    bool    `yaml:"inactive"`
}

type User struct {
	// ID pins the account id, e.g. to match tokens issued elsewhere.
	ID          string    `yaml:"id"`
	Username    string    `yaml:"username"`
	DisplayName string    `yaml:"display_name"`
	Phone       string    `yaml:"phone"`
	Role        string    `yaml:"role"`
	Inactive    bool      `yaml:"inactive"`
	Provider    *Provider `yaml:"provider"`
}

// Provider lists offered services by name.
type Provider struct {
	City     string   `yaml:"city"`
	Services []string `yaml:"services"`
}

func Read(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// ServiceID is the id a seeded service gets.
func ServiceID(name string) kernel.UUID {
	return derive("service", name)
}

// UserID is the id a seeded account gets when the file does not pin one.
func UserID(username string) kernel.UUID {
	return derive("user", username)
}

func derive(kind, name string) kernel.UUID {
	id, _ := kernel.UUIDFromGoogle(uuid.NewSHA1(namespace, []byte(kind+":"+name)))
	return id
}

type servicesSetter interface {
	Handle(ctx context.Context, cmd commands.SetProviderServicesCommand) error
}

type Loader struct {
	db          *gorm.DB
	setServices servicesSetter
	logger      *slog.Logger
}

func NewLoader(db *gorm.DB, setServices servicesSetter, logger *slog.Logger) *Loader {
	return &Loader{
		db:          db,
		setServices: setServices,
		logger:      logger.With("component", "seed"),
	}
}

// Apply upserts the catalog and the accounts in one transaction, then sets
// each provider's services through the regular command so price entries are
// reconciled the same way as for a provider editing their own profile.
func (l *Loader) Apply(ctx context.Context, f *File) error {
	catalog, users, err := f.rows()
	if err != nil {
		return err
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})
		if len(catalog.categories) > 0 {
			if err := upsert.Create(&catalog.categories).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
		}
		if len(catalog.services) > 0 {
			if err := upsert.Create(&catalog.services).Error; err != nil {
				return fmt.Errorf("seed services: %w", err)
			}
		}
		if len(users) > 0 {
			if err := upsert.Create(&users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	providers := 0
	for _, u := range f.Users {
		if u.Provider == nil {
			continue
		}
		if err = l.applyProvider(ctx, u); err != nil {
			return fmt.Errorf("seed provider %s: %w", u.Username, err)
		}
		providers++
	}

	l.logger.InfoContext(ctx, "seed applied",
		"categories", len(catalog.categories),
		"services", len(catalog.services),
		"users", len(users),
		"providers", providers,
	)
	return nil
}

func (l *Loader) applyProvider(ctx context.Context, u User) error {
	id, err := u.id()
	if err != nil {
		return err
	}

	serviceIDs := make([]kernel.UUID, 0, len(u.Provider.Services))
	for _, name := range u.Provider.Services {
		serviceIDs = append(serviceIDs, ServiceID(name))
	}

	city := u.Provider.City
	cmd, err := commands.NewSetProviderServicesCommand(id, serviceIDs, &city)
	if err != nil {
		return err
	}
	return l.setServices.Handle(ctx, cmd)
}

type catalogRows struct {
	categories []catalogrepo.CategoryDTO
	services   []catalogrepo.ServiceDTO
}

func (f *File) rows() (catalogRows, []userrepo.UserDTO, error) {
	var (
		rows    catalogRows
		errList []error
	)

	for _, c := range f.Categories {
		categoryID := derive("category", c.Name)
		rows.categories = append(rows.categories, catalogrepo.CategoryDTO{
			ID:          categoryID.Bytes(),
			Name:        c.Name,
			Description: c.Description,
			Active:      !c.Inactive,
		})

		for _, s := range c.Services {
			base, err := kernel.NewPrice(s.BasePrice)
			if err != nil {
				errList = append(errList, fmt.Errorf("service %q: %w", s.Name, err))
				continue
			}
			rows.services = append(rows.services, catalogrepo.ServiceDTO{
				ID:             ServiceID(s.Name).Bytes(),
				CategoryID:     categoryID.Bytes(),
				Name:           s.Name,
				Description:    s.Description,
				BasePriceCents: base.Cents(),
				Active:         !s.Inactive,
			})
		}
	}

	users := make([]userrepo.UserDTO, 0, len(f.Users))
	for _, u := range f.Users {
		dto, err := u.row()
		if err != nil {
			errList = append(errList, fmt.Errorf("user %q: %w", u.Username, err))
			continue
		}
		users = append(users, dto)
	}

	return rows, users, errors.Join(errList...)
}

func (u User) id() (kernel.UUID, error) {
	if u.ID == "" {
		return UserID(u.Username), nil
	}
	return kernel.UUIDFromString(u.ID)
}

func (u User) row() (userrepo.UserDTO, error) {
	id, err := u.id()
	if err != nil {
		return userrepo.UserDTO{}, err
	}
	role, err := user.ParseRole(u.Role)
	if err != nil {
		return userrepo.UserDTO{}, err
	}
	if u.Provider != nil && !role.IsProvider() {
		return userrepo.UserDTO{}, fmt.Errorf("has a provider profile but role %s", role)
	}

	account, err := user.RestoreUser(id, u.Username, u.DisplayName, u.Phone, role, !u.Inactive)
	if err != nil {
		return userrepo.UserDTO{}, err
	}
	return userrepo.FromDomain(account), nil
}
