package entity

import "errors"

var (
	// Offer errors
	ErrOfferNotFound              = errors.New("offer not found")
	ErrOfferTypeInvalid           = errors.New("invalid offer type")
	ErrOfferTitleRequired         = errors.New("offer title is required")
	ErrOfferPriceInvalid          = errors.New("offer price must be positive")
	ErrPlaceDataRequired          = errors.New("place data is required")
	ErrActivityDataRequired       = errors.New("activity data is required")
	ErrTransportationDataRequired = errors.New("transportation data is required")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
	ErrInvalidBookingStatus    = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrNotEnoughCapacity       = errors.New("not enough available capacity")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden operation")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
