package repository

import (
	"context"

	"github.com/voyago/api/internal/entity"
)

// OfferFilter narrows offer listings. City is a case-insensitive
// substring match, Type an exact match; empty fields are ignored.
type OfferFilter struct {
	City string
	Type entity.OfferType
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*entity.User, error)
}

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	GetAll(ctx context.Context, filter *OfferFilter) ([]*entity.Offer, error)
	Update(ctx context.Context, offer *entity.Offer) error
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	// Create persists the booking. For offers with a capacity it must
	// reject the insert when confirmed quantities would exceed it.
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	GetAll(ctx context.Context) ([]*entity.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id string) error
}
