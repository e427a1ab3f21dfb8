package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	repository "github.com/voyago/api/internal/database/postgres"
	"github.com/voyago/api/internal/entity"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.ErrEmailTaken
		}
	}
	r.seq++
	if user.ID == "" {
		user.ID = "user-" + strconv.Itoa(r.seq)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return entity.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Role = user.Role
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return entity.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

type fakeOfferRepo struct {
	mu     sync.Mutex
	offers map[string]*entity.Offer
	seq    int
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[string]*entity.Offer)}
}

func (r *fakeOfferRepo) Create(_ context.Context, offer *entity.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if offer.ID == "" {
		offer.ID = "offer-" + strconv.Itoa(r.seq)
	}
	clone := *offer
	r.offers[offer.ID] = &clone
	return nil
}

func (r *fakeOfferRepo) GetByID(_ context.Context, id string) (*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	offer, ok := r.offers[id]
	if !ok {
		return nil, entity.ErrOfferNotFound
	}
	clone := *offer
	return &clone, nil
}

func (r *fakeOfferRepo) GetAll(_ context.Context, filter *repository.OfferFilter) ([]*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	offers := make([]*entity.Offer, 0, len(r.offers))
	for _, o := range r.offers {
		if filter != nil {
			if filter.Type != "" && o.Type != filter.Type {
				continue
			}
			if filter.City != "" {
				if o.Location == nil || !strings.Contains(strings.ToLower(o.Location.City), strings.ToLower(filter.City)) {
					continue
				}
			}
		}
		clone := *o
		offers = append(offers, &clone)
	}
	return offers, nil
}

func (r *fakeOfferRepo) Update(_ context.Context, offer *entity.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offers[offer.ID]; !ok {
		return entity.ErrOfferNotFound
	}
	clone := *offer
	r.offers[offer.ID] = &clone
	return nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offers[id]; !ok {
		return entity.ErrOfferNotFound
	}
	delete(r.offers, id)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking
	seq      int

	// capacity, when set, mimics the capacity check the real repository
	// performs inside its transaction.
	capacity map[string]int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit, ok := r.capacity[booking.OfferID]; ok && booking.Status == entity.BookingStatusConfirmed {
		taken := 0
		for _, b := range r.bookings {
			if b.OfferID == booking.OfferID && b.Status == entity.BookingStatusConfirmed {
				taken += b.Quantity
			}
		}
		if taken+booking.Quantity > limit {
			return entity.ErrNotEnoughCapacity
		}
	}
	r.seq++
	if booking.ID == "" {
		booking.ID = "booking-" + strconv.Itoa(r.seq)
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	clone := *booking
	return &clone, nil
}

func (r *fakeBookingRepo) GetAll(_ context.Context) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := make([]*entity.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		clone := *b
		bookings = append(bookings, &clone)
	}
	return bookings, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			clone := *b
			bookings = append(bookings, &clone)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[booking.ID]; !ok {
		return entity.ErrBookingNotFound
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return entity.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

type fakeOfferCache struct {
	mu      sync.Mutex
	offers  map[string]*entity.Offer
	hits    int
	misses  int
	deletes int
}

func newFakeOfferCache() *fakeOfferCache {
	return &fakeOfferCache{offers: make(map[string]*entity.Offer)}
}

func (c *fakeOfferCache) GetOffer(_ context.Context, id string) (*entity.Offer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	offer, ok := c.offers[id]
	if !ok {
		c.misses++
		return nil, entity.ErrOfferNotFound
	}
	c.hits++
	clone := *offer
	return &clone, nil
}

func (c *fakeOfferCache) SetOffer(_ context.Context, offer *entity.Offer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := *offer
	c.offers[offer.ID] = &clone
	return nil
}

func (c *fakeOfferCache) DeleteOffer(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.offers, id)
	c.deletes++
	return nil
}
