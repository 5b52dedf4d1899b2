// Package bookingrepo maps the booking aggregate, including its review, to the
// bookings and reviews tables.
package bookingrepo

import (
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO is a row of the bookings table. Version backs the conditional
// update that serializes writers of one booking.
type BookingDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProviderID    *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Address       string     `gorm:"type:text;not null"`
	ScheduledDate time.Time  `gorm:"not null"`
	TimeSlot      string     `gorm:"type:varchar(16);not null"`
	Status        string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt     time.Time  `gorm:"not null"`
	Version       int64      `gorm:"not null;default:1"`

	Review *ReviewDTO `gorm:"foreignKey:BookingID;references:ID"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

// ReviewDTO is a row of the reviews table. The unique booking_id enforces one
// review per booking at the storage level too.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(b *booking.Booking) BookingDTO {
	var providerID *uuid.UUID
	if id := b.Provider(); id != nil {
		raw := id.Bytes()
		providerID = &raw
	}

	dto := BookingDTO{
		ID:            b.ID().Bytes(),
		CustomerID:    b.CustomerID().Bytes(),
		ProviderID:    providerID,
		ServiceID:     b.ServiceID().Bytes(),
		Address:       b.Address(),
		ScheduledDate: b.ScheduledDate(),
		TimeSlot:      b.TimeSlot().String(),
		Status:        b.Status().String(),
		CreatedAt:     b.CreatedAt(),
		Version:       b.Version(),
	}

	if r := b.Review(); r != nil {
		dto.Review = &ReviewDTO{
			ID:        r.ID().Bytes(),
			BookingID: dto.ID,
			AuthorID:  r.AuthorID().Bytes(),
			Rating:    r.Rating(),
			Comment:   r.Comment(),
			CreatedAt: r.CreatedAt(),
		}
	}

	return dto
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromGoogle(dto.ServiceID)
	if err != nil {
		return nil, err
	}

	var providerID *kernel.UUID
	if dto.ProviderID != nil {
		pID, providerErr := kernel.UUIDFromGoogle(*dto.ProviderID)
		if providerErr != nil {
			return nil, providerErr
		}
		providerID = &pID
	}

	slot, err := booking.ParseTimeSlot(dto.TimeSlot)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var review *booking.Review
	if dto.Review != nil {
		if review, err = reviewToDomain(*dto.Review); err != nil {
			return nil, err
		}
	}

	return booking.RestoreBooking(
		id,
		customerID,
		serviceID,
		providerID,
		dto.Address,
		dto.ScheduledDate,
		slot,
		status,
		dto.CreatedAt,
		review,
		dto.Version,
	)
}

func reviewToDomain(dto ReviewDTO) (*booking.Review, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	authorID, err := kernel.UUIDFromGoogle(dto.AuthorID)
	if err != nil {
		return nil, err
	}
	return booking.NewReview(id, authorID, dto.Rating, dto.Comment, dto.CreatedAt)
}
