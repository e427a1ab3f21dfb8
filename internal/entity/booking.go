package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         string        `json:"id" db:"id"`
	UserID     string        `json:"user_id" db:"user_id"`
	OfferID    string        `json:"offer_id" db:"offer_id"`
	Status     BookingStatus `json:"status" db:"status"`
	StartDate  *time.Time    `json:"start_date,omitempty" db:"start_date"`
	EndDate    *time.Time    `json:"end_date,omitempty" db:"end_date"`
	Quantity   int           `json:"quantity" db:"quantity"`
	TotalPrice float64       `json:"total_price" db:"total_price"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at"`
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed.
// Allowed: pending->confirmed, pending->cancelled, confirmed->cancelled.
// Setting the same status again is a no-op and always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled
	}
	return false
}

// DaySpan is the whole-day difference between end and start, truncated
// toward zero. Used as a pricing multiplier when strictly positive.
func DaySpan(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
