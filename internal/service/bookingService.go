package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/voyago/api/internal/database/postgres"
	"github.com/voyago/api/internal/entity"

	"github.com/sirupsen/logrus"
)

// CreateBookingRequest represents the data needed to book an offer.
// TotalPrice is deliberately absent: it is always computed server-side.
type CreateBookingRequest struct {
	UserID    string     `json:"user_id"`
	OfferID   string     `json:"offer_id" binding:"required"`
	Quantity  int        `json:"quantity" binding:"omitempty,min=1"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// UpdateBookingRequest carries the mutable booking fields. Unset fields
// keep their stored values.
type UpdateBookingRequest struct {
	Status    *entity.BookingStatus `json:"status,omitempty"`
	Quantity  *int                  `json:"quantity,omitempty" binding:"omitempty,min=1"`
	StartDate *time.Time            `json:"start_date,omitempty"`
	EndDate   *time.Time            `json:"end_date,omitempty"`
}

// BookingNotifier receives a fire-and-forget notification for fresh
// bookings. Optional.
type BookingNotifier interface {
	NotifyBookingCreated(bookingID, offerTitle string, quantity int, totalPrice float64) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	offerRepo   repository.OfferRepository
	notifier    BookingNotifier
}

// NewBookingService creates a new instance of BookingService. The
// notifier is optional.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	offerRepo repository.OfferRepository,
	notifier BookingNotifier,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		offerRepo:   offerRepo,
		notifier:    notifier,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, identity *entity.Identity, req *CreateBookingRequest) (*entity.Booking, error) {
	if identity == nil {
		return nil, entity.ErrUnauthorized
	}

	// The offer must exist before any price computation happens.
	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = identity.UserID
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, entity.ErrInvalidQuantity
	}

	// Bookings are confirmed immediately rather than left pending.
	booking := &entity.Booking{
		UserID:     userID,
		OfferID:    req.OfferID,
		Status:     entity.BookingStatusConfirmed,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Quantity:   quantity,
		TotalPrice: totalPrice(offer.Price, quantity, req.StartDate, req.EndDate),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"offer_id":    booking.OfferID,
		"user_id":     booking.UserID,
		"quantity":    booking.Quantity,
		"total_price": booking.TotalPrice,
	}).Info("booking created")

	if s.notifier != nil {
		go func() {
			if err := s.notifier.NotifyBookingCreated(booking.ID, offer.Title, booking.Quantity, booking.TotalPrice); err != nil {
				logrus.Warnf("failed to send booking notification: %v", err)
			}
		}()
	}

	return booking, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, identity *entity.Identity, id string, req *UpdateBookingRequest) (*entity.Booking, error) {
	if !identity.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Recompute the total whenever quantity or either date changes,
	// falling back to the stored values for anything the payload omits.
	if req.Quantity != nil || req.StartDate != nil || req.EndDate != nil {
		offer, err := s.offerRepo.GetByID(ctx, booking.OfferID)
		if err != nil {
			return nil, err
		}

		quantity := booking.Quantity
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		if quantity < 1 {
			return nil, entity.ErrInvalidQuantity
		}

		start := booking.StartDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		end := booking.EndDate
		if req.EndDate != nil {
			end = req.EndDate
		}

		booking.Quantity = quantity
		booking.StartDate = start
		booking.EndDate = end
		booking.TotalPrice = totalPrice(offer.Price, quantity, start, end)
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, entity.ErrInvalidBookingStatus
		}
		if !booking.Status.CanTransitionTo(*req.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", entity.ErrInvalidStatusTransition, booking.Status, *req.Status)
		}
		booking.Status = *req.Status
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all bookings: %w", err)
	}

	return bookings, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, identity *entity.Identity, userID string) ([]*entity.Booking, error) {
	if identity == nil {
		return nil, entity.ErrUnauthorized
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}

	return bookings, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, identity *entity.Identity, id string) (*entity.Booking, error) {
	if identity == nil {
		return nil, entity.ErrUnauthorized
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return booking, nil
}

// totalPrice is unit price times quantity, multiplied by the whole-day
// span when both dates are present and the span is strictly positive.
func totalPrice(unitPrice float64, quantity int, start, end *time.Time) float64 {
	total := unitPrice * float64(quantity)
	if start != nil && end != nil {
		if days := entity.DaySpan(*start, *end); days > 0 {
			total *= float64(days)
		}
	}
	return total
}
