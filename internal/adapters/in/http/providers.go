package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCatalog handles GET /api/v1/services/categories. It is public.
func (s *Server) GetCatalog(ctx echo.Context) error {
	categories, err := s.h.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCategories(categories))
}

// ListServiceProviders handles GET /api/v1/services/{id}/providers.
func (s *Server) ListServiceProviders(ctx echo.Context, id servers.Id, params servers.ListServiceProvidersParams) error {
	if _, err := requireRole(ctx, "list providers"); err != nil {
		return err
	}

	serviceID, err := toKernelID(id, "id")
	if err != nil {
		return err
	}
	city := ""
	if params.City != nil {
		city = *params.City
	}

	query, err := queries.NewListServiceProvidersQuery(serviceID, city)
	if err != nil {
		return err
	}
	providers, err := s.h.ListServiceProviders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toServiceProviders(providers))
}

// GetMyServices handles GET /api/v1/providers/me/services.
func (s *Server) GetMyServices(ctx echo.Context) error {
	caller, err := requireRole(ctx, "view own services", user.Provider)
	if err != nil {
		return err
	}
	return s.respondOffering(ctx, caller.UserID)
}

// SetMyServices handles POST /api/v1/providers/me/services.
func (s *Server) SetMyServices(ctx echo.Context) error {
	caller, err := requireRole(ctx, "set own services", user.Provider)
	if err != nil {
		return err
	}
	return s.setServices(ctx, caller.UserID)
}

// GetMyPrices handles GET /api/v1/providers/me/prices.
func (s *Server) GetMyPrices(ctx echo.Context) error {
	caller, err := requireRole(ctx, "view own prices", user.Provider)
	if err != nil {
		return err
	}
	return s.respondOffering(ctx, caller.UserID)
}

// SetMyPrices handles POST /api/v1/providers/me/prices.
func (s *Server) SetMyPrices(ctx echo.Context) error {
	caller, err := requireRole(ctx, "set own prices", user.Provider)
	if err != nil {
		return err
	}
	return s.setPrices(ctx, caller.UserID)
}

// AdminSetProviderServices handles POST /api/v1/admin/providers/{userId}/services.
func (s *Server) AdminSetProviderServices(ctx echo.Context, userID servers.UserId) error {
	if _, err := requireRole(ctx, "set provider services", user.Admin); err != nil {
		return err
	}
	providerID, err := toKernelID(userID, "userId")
	if err != nil {
		return err
	}
	return s.setServices(ctx, providerID)
}

// AdminGetProviderPrices handles GET /api/v1/admin/providers/{userId}/prices.
func (s *Server) AdminGetProviderPrices(ctx echo.Context, userID servers.UserId) error {
	if _, err := requireRole(ctx, "view provider prices", user.Admin); err != nil {
		return err
	}
	providerID, err := toKernelID(userID, "userId")
	if err != nil {
		return err
	}
	return s.respondOffering(ctx, providerID)
}

// AdminSetProviderPrices handles POST /api/v1/admin/providers/{userId}/prices.
func (s *Server) AdminSetProviderPrices(ctx echo.Context, userID servers.UserId) error {
	if _, err := requireRole(ctx, "set provider prices", user.Admin); err != nil {
		return err
	}
	providerID, err := toKernelID(userID, "userId")
	if err != nil {
		return err
	}
	return s.setPrices(ctx, providerID)
}

func (s *Server) setServices(ctx echo.Context, providerID kernel.UUID) error {
	var body servers.ServiceSelection
	if err := bind(ctx, &body); err != nil {
		return err
	}

	serviceIDs, err := toKernelIDs(body.Services, "services")
	if err != nil {
		return err
	}
	cmd, err := commands.NewSetProviderServicesCommand(providerID, serviceIDs, nil)
	if err != nil {
		return err
	}
	if err = s.h.SetProviderServices.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOffering(ctx, providerID)
}

func (s *Server) setPrices(ctx echo.Context, providerID kernel.UUID) error {
	var body servers.PriceUpdate
	if err := bind(ctx, &body); err != nil {
		return err
	}

	items := make([]provider.PriceItem, 0, len(body.Prices))
	for _, item := range body.Prices {
		serviceID, err := toKernelID(item.ServiceId, "service_id")
		if err != nil {
			return err
		}
		price, err := kernel.NewPrice(item.Price)
		if err != nil {
			return err
		}
		items = append(items, provider.PriceItem{ServiceID: serviceID, Price: price})
	}

	cmd, err := commands.NewSetProviderPricesCommand(providerID, items)
	if err != nil {
		return err
	}
	if err = s.h.SetProviderPrices.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOffering(ctx, providerID)
}

func (s *Server) respondOffering(ctx echo.Context, providerID kernel.UUID) error {
	query, err := queries.NewGetProviderOfferingQuery(providerID)
	if err != nil {
		return err
	}
	offering, err := s.h.GetProviderOffering.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOffering(offering))
}
