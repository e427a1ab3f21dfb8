package service

import (
	"context"

	repository "github.com/voyago/api/internal/database/postgres"
	"github.com/voyago/api/internal/entity"
)

// AuthService handles registration, login and token-derived profiles.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
	CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)
}

// UserService manages the user directory. Every operation receives the
// caller identity explicitly and enforces its own access policy.
type UserService interface {
	GetAllUsers(ctx context.Context, identity *entity.Identity) ([]*entity.User, error)
	GetUser(ctx context.Context, identity *entity.Identity, id string) (*entity.User, error)
	UpdateUser(ctx context.Context, identity *entity.Identity, id string, req *UpdateUserRequest) (*entity.User, error)
	DeleteUser(ctx context.Context, identity *entity.Identity, id string) (*entity.User, error)
}

// OfferService manages the offer catalog.
type OfferService interface {
	ListOffers(ctx context.Context, filter *repository.OfferFilter) ([]*entity.Offer, error)
	GetOffer(ctx context.Context, id string) (*entity.Offer, error)
	CreateOffer(ctx context.Context, identity *entity.Identity, req *OfferRequest) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, identity *entity.Identity, id string, req *OfferRequest) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, identity *entity.Identity, id string) (*entity.Offer, error)
}

// BookingService manages reservations and their pricing.
type BookingService interface {
	CreateBooking(ctx context.Context, identity *entity.Identity, req *CreateBookingRequest) (*entity.Booking, error)
	UpdateBooking(ctx context.Context, identity *entity.Identity, id string, req *UpdateBookingRequest) (*entity.Booking, error)
	GetBooking(ctx context.Context, id string) (*entity.Booking, error)
	GetAllBookings(ctx context.Context) ([]*entity.Booking, error)
	GetUserBookings(ctx context.Context, identity *entity.Identity, userID string) ([]*entity.Booking, error)
	DeleteBooking(ctx context.Context, identity *entity.Identity, id string) (*entity.Booking, error)
}
