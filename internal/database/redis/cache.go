package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/voyago/api/internal/entity"

	"github.com/go-redis/redis/v8"
)

// OfferCache holds offers by id with a TTL. Mutations must invalidate
// through DeleteOffer so readers never see stale data past the TTL window.
type OfferCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOfferCache(client *redis.Client, ttl time.Duration) *OfferCache {
	return &OfferCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *OfferCache) SetOffer(ctx context.Context, offer *entity.Offer) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, "offer:"+offer.ID, data, c.ttl).Err()
}

func (c *OfferCache) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	data, err := c.client.Get(ctx, "offer:"+id).Result()
	if err != nil {
		return nil, err
	}

	var offer entity.Offer
	err = json.Unmarshal([]byte(data), &offer)
	if err != nil {
		return nil, err
	}

	return &offer, nil
}

func (c *OfferCache) DeleteOffer(ctx context.Context, id string) error {
	return c.client.Del(ctx, "offer:"+id).Err()
}
