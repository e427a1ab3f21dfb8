package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/voyago/api/internal/entity"

	"github.com/google/uuid"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, user_id, offer_id, status, start_date, end_date,
	quantity, total_price, created_at, updated_at`

// Create persists a booking inside a transaction. For place offers the
// confirmed quantities are re-checked against capacity under the same
// transaction, so concurrent bookings cannot oversell the offer.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var placePayload []byte
	query := `SELECT place FROM offers WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, booking.OfferID).Scan(&placePayload)
	if err == sql.ErrNoRows {
		return entity.ErrOfferNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock offer: %w", err)
	}

	if len(placePayload) > 0 {
		var place entity.PlaceDetails
		if err := json.Unmarshal(placePayload, &place); err != nil {
			return fmt.Errorf("failed to decode place payload: %w", err)
		}

		if place.Capacity > 0 && booking.Status == entity.BookingStatusConfirmed {
			var confirmedQuantity int
			query = `SELECT COALESCE(SUM(quantity), 0) FROM bookings WHERE offer_id = $1 AND status = 'confirmed'`
			err = tx.QueryRowContext(ctx, query, booking.OfferID).Scan(&confirmedQuantity)
			if err != nil {
				return fmt.Errorf("failed to check confirmed quantity: %w", err)
			}

			if confirmedQuantity+booking.Quantity > place.Capacity {
				return entity.ErrNotEnoughCapacity
			}
		}
	}

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query = `
		INSERT INTO bookings (id, user_id, offer_id, status, start_date, end_date,
			quantity, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.ExecContext(ctx, query,
		booking.ID,
		booking.UserID,
		booking.OfferID,
		booking.Status,
		booking.StartDate,
		booking.EndDate,
		booking.Quantity,
		booking.TotalPrice,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.OfferID,
		&booking.Status,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Quantity,
		&booking.TotalPrice,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $1, start_date = $2, end_date = $3, quantity = $4,
		    total_price = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		booking.Status,
		booking.StartDate,
		booking.EndDate,
		booking.Quantity,
		booking.TotalPrice,
		time.Now(),
		booking.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrBookingNotFound
	}

	booking.UpdatedAt = time.Now()
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]*entity.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.OfferID,
			&booking.Status,
			&booking.StartDate,
			&booking.EndDate,
			&booking.Quantity,
			&booking.TotalPrice,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
