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

type offerRepository struct {
	db *sql.DB
}

func NewOfferRepository(db *sql.DB) OfferRepository {
	return &offerRepository{db: db}
}

const offerColumns = `id, type, title, description, price, owner_id, is_active,
	location, place, activity, transportation, created_at, updated_at`

func (r *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}

	now := time.Now()
	offer.CreatedAt = now
	offer.UpdatedAt = now

	location, place, activity, transportation, err := marshalVariants(offer)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO offers (id, type, title, description, price, owner_id, is_active,
			location, place, activity, transportation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.db.ExecContext(ctx, query,
		offer.ID,
		offer.Type,
		offer.Title,
		offer.Description,
		offer.Price,
		offer.OwnerID,
		offer.IsActive,
		location,
		place,
		activity,
		transportation,
		offer.CreatedAt,
		offer.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

func (r *offerRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	offer, err := scanOffer(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	return offer, nil
}

func (r *offerRepository) GetAll(ctx context.Context, filter *OfferFilter) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE 1=1`
	args := []interface{}{}

	if filter != nil && filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		query += fmt.Sprintf(" AND location->>'city' ILIKE $%d", len(args))
	}
	if filter != nil && filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	var offers []*entity.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}

func (r *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	location, place, activity, transportation, err := marshalVariants(offer)
	if err != nil {
		return err
	}

	query := `
		UPDATE offers
		SET type = $1, title = $2, description = $3, price = $4, owner_id = $5,
		    is_active = $6, location = $7, place = $8, activity = $9,
		    transportation = $10, updated_at = $11
		WHERE id = $12
	`

	result, err := r.db.ExecContext(ctx, query,
		offer.Type,
		offer.Title,
		offer.Description,
		offer.Price,
		offer.OwnerID,
		offer.IsActive,
		location,
		place,
		activity,
		transportation,
		time.Now(),
		offer.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrOfferNotFound
	}

	offer.UpdatedAt = time.Now()
	return nil
}

func (r *offerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM offers WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrOfferNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOffer(row rowScanner) (*entity.Offer, error) {
	var offer entity.Offer
	var location, place, activity, transportation []byte

	err := row.Scan(
		&offer.ID,
		&offer.Type,
		&offer.Title,
		&offer.Description,
		&offer.Price,
		&offer.OwnerID,
		&offer.IsActive,
		&location,
		&place,
		&activity,
		&transportation,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalVariant(location, &offer.Location); err != nil {
		return nil, err
	}
	if err := unmarshalVariant(place, &offer.Place); err != nil {
		return nil, err
	}
	if err := unmarshalVariant(activity, &offer.Activity); err != nil {
		return nil, err
	}
	if err := unmarshalVariant(transportation, &offer.Transportation); err != nil {
		return nil, err
	}

	return &offer, nil
}

// marshalVariants serializes the optional sub-objects; absent ones stay
// NULL in the database rather than JSON null.
func marshalVariants(offer *entity.Offer) (location, place, activity, transportation []byte, err error) {
	if offer.Location != nil {
		if location, err = json.Marshal(offer.Location); err != nil {
			return
		}
	}
	if offer.Place != nil {
		if place, err = json.Marshal(offer.Place); err != nil {
			return
		}
	}
	if offer.Activity != nil {
		if activity, err = json.Marshal(offer.Activity); err != nil {
			return
		}
	}
	if offer.Transportation != nil {
		transportation, err = json.Marshal(offer.Transportation)
	}
	return
}

func unmarshalVariant(data []byte, dst interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
