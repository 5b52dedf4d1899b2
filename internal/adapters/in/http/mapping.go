package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id uuid.UUID, param string) (kernel.UUID, error) {
	if id == uuid.Nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, errMissingID)
	}
	return kernel.UUIDFromGoogle(id)
}

func toKernelIDs(ids []uuid.UUID, param string) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		kid, err := toKernelID(id, param)
		if err != nil {
			return nil, err
		}
		out = append(out, kid)
	}
	return out, nil
}

func bookingRef(id kernel.UUID, status booking.Status) servers.BookingRef {
	return servers.BookingRef{BookingId: id.Bytes(), Status: servers.BookingStatus(status.String())}
}

func toBookings(views []queries.BookingView) []servers.Booking {
	out := make([]servers.Booking, len(views))
	for i, v := range views {
		b := servers.Booking{
			Id:               v.ID.Bytes(),
			ServiceId:        v.ServiceID.Bytes(),
			ServiceName:      v.ServiceName,
			Category:         v.Category,
			CustomerId:       v.CustomerID.Bytes(),
			CustomerUsername: v.CustomerUsername,
			Address:          v.Address,
			ScheduledDate:    openapi_types.Date{Time: v.ScheduledDate},
			TimeSlot:         servers.TimeSlot(v.TimeSlot.String()),
			Status:           servers.BookingStatus(v.Status.String()),
			CreatedAt:        v.CreatedAt,
		}
		if v.ProviderID != nil {
			providerID := openapi_types.UUID(v.ProviderID.Bytes())
			b.ProviderId = &providerID
			b.ProviderUsername = &v.ProviderUsername
			b.ProviderName = &v.ProviderName
		}
		if v.Review != nil {
			b.Review = &servers.BookingReview{Rating: v.Review.Rating, Comment: v.Review.Comment}
		}
		out[i] = b
	}
	return out
}

func toReviews(views []queries.ReviewView) []servers.Review {
	out := make([]servers.Review, len(views))
	for i, v := range views {
		out[i] = servers.Review{
			Id:               v.ID.Bytes(),
			BookingId:        v.BookingID.Bytes(),
			ServiceName:      v.ServiceName,
			ProviderUsername: v.ProviderUsername,
			CustomerUsername: v.AuthorUsername,
			Rating:           v.Rating,
			Comment:          v.Comment,
			CreatedAt:        v.CreatedAt,
		}
	}
	return out
}

func toCategories(categories []queries.CatalogCategory) []servers.Category {
	out := make([]servers.Category, len(categories))
	for i, c := range categories {
		services := make([]servers.CatalogService, len(c.Services))
		for j, s := range c.Services {
			services[j] = servers.CatalogService{
				Id:          s.ID.Bytes(),
				Name:        s.Name,
				Description: s.Description,
				BasePrice:   s.BasePrice.Amount(),
				StartsFrom:  s.StartsFrom.Amount(),
			}
		}
		out[i] = servers.Category{
			Id:          c.ID.Bytes(),
			Name:        c.Name,
			Description: c.Description,
			Services:    services,
		}
	}
	return out
}

func toServiceProviders(providers []queries.ServiceProvider) []servers.ServiceProvider {
	out := make([]servers.ServiceProvider, len(providers))
	for i, p := range providers {
		out[i] = servers.ServiceProvider{
			Id:          p.UserID.Bytes(),
			Username:    p.Username,
			DisplayName: p.DisplayName,
			Phone:       p.Phone,
			City:        p.City,
			Rating:      p.Rating,
			Price:       p.Price.Amount(),
		}
	}
	return out
}

func toOffering(o queries.ProviderOffering) servers.ProviderOffering {
	services := make([]servers.OfferedService, len(o.Services))
	for i, s := range o.Services {
		services[i] = servers.OfferedService{
			ServiceId:   s.ServiceID.Bytes(),
			ServiceName: s.ServiceName,
			BasePrice:   s.BasePrice.Amount(),
			Price:       s.Price.Amount(),
		}
	}
	return servers.ProviderOffering{City: o.City, Services: services}
}

func toNotifications(views []queries.NotificationView) []servers.Notification {
	out := make([]servers.Notification, len(views))
	for i, n := range views {
		out[i] = servers.Notification{
			Id:        n.ID.Bytes(),
			Message:   n.Message,
			IsRead:    n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return out
}
