package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/voyago/api/internal/database/postgres"
	"github.com/voyago/api/internal/entity"

	"github.com/sirupsen/logrus"
)

// OfferRequest represents the data needed to create or replace an offer.
// OwnerID is deliberately absent: it is always taken from the caller
// identity, never from the payload.
type OfferRequest struct {
	Type           entity.OfferType              `json:"type" binding:"required"`
	Title          string                        `json:"title" binding:"required,min=1,max=255"`
	Description    string                        `json:"description" binding:"max=1000"`
	Price          float64                       `json:"price" binding:"required"`
	IsActive       *bool                         `json:"is_active,omitempty"`
	Location       *entity.Location              `json:"location,omitempty"`
	Place          *entity.PlaceDetails          `json:"place,omitempty"`
	Activity       *entity.ActivityDetails       `json:"activity,omitempty"`
	Transportation *entity.TransportationDetails `json:"transportation,omitempty"`
}

// OfferCache is the read-through cache used for single-offer lookups.
type OfferCache interface {
	GetOffer(ctx context.Context, id string) (*entity.Offer, error)
	SetOffer(ctx context.Context, offer *entity.Offer) error
	DeleteOffer(ctx context.Context, id string) error
}

type offerService struct {
	offerRepo repository.OfferRepository
	cache     OfferCache
}

// NewOfferService creates a new instance of OfferService. The cache is
// optional; a nil cache means every read hits the database.
func NewOfferService(offerRepo repository.OfferRepository, cache OfferCache) OfferService {
	return &offerService{
		offerRepo: offerRepo,
		cache:     cache,
	}
}

func (s *offerService) ListOffers(ctx context.Context, filter *repository.OfferFilter) ([]*entity.Offer, error) {
	offers, err := s.offerRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	return offers, nil
}

func (s *offerService) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	if s.cache != nil {
		if offer, err := s.cache.GetOffer(ctx, id); err == nil {
			return offer, nil
		}
	}

	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetOffer(ctx, offer); err != nil {
			logrus.Warnf("failed to cache offer %s: %v", id, err)
		}
	}

	return offer, nil
}

func (s *offerService) CreateOffer(ctx context.Context, identity *entity.Identity, req *OfferRequest) (*entity.Offer, error) {
	if identity == nil {
		return nil, entity.ErrUnauthorized
	}

	offer := offerFromRequest(req)
	offer.OwnerID = identity.UserID

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, identity *entity.Identity, id string, req *OfferRequest) (*entity.Offer, error) {
	if identity == nil {
		return nil, entity.ErrUnauthorized
	}

	existing, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offer := offerFromRequest(req)
	offer.ID = existing.ID
	offer.CreatedAt = existing.CreatedAt
	// Ownership always follows the authenticated caller, so a payload can
	// never reassign an offer to someone else.
	offer.OwnerID = identity.UserID

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return offer, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, identity *entity.Identity, id string) (*entity.Offer, error) {
	if !identity.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.offerRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return offer, nil
}

func (s *offerService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteOffer(ctx, id); err != nil {
		logrus.Warnf("failed to invalidate offer cache for %s: %v", id, err)
	}
}

func offerFromRequest(req *OfferRequest) *entity.Offer {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &entity.Offer{
		Type:           req.Type,
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		IsActive:       isActive,
		Location:       req.Location,
		Place:          req.Place,
		Activity:       req.Activity,
		Transportation: req.Transportation,
		UpdatedAt:      time.Now(),
	}
}
