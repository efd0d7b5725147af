package delivery

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/alessaops/storefront-backend/pkg/redis"
	"github.com/google/uuid"
)

// Quoter fetches quotes from the provider. Satisfied by *Client.
type Quoter interface {
	GetQuote(ctx context.Context, req QuoteRequest) (*Quote, error)
}

// Cache is the subset of the redis client the quote service uses.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeliveryQuoteKey(tenantID, fingerprint string) string
}

// Service resolves delivery quotes with a short-lived cache in front of
// the provider. Quote failures degrade to no quote; the totals pipeline
// then falls back to the tenant's base delivery fee.
type Service struct {
	quoter   Quoter
	cache    Cache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService builds a quote service. A nil quoter means the provider is
// not configured and every lookup returns no quote.
func NewService(quoter Quoter, cache Cache, cacheTTL time.Duration, logg *logger.Logger) *Service {
	return &Service{
		quoter:   quoter,
		cache:    cache,
		cacheTTL: cacheTTL,
		logg:     logg,
	}
}

// QuoteFor returns the provider quote for the dropoff address, or nil when
// no quote could be obtained.
func (s *Service) QuoteFor(ctx context.Context, tenantID uuid.UUID, pickupAddress, dropoffAddress string) *Quote {
	if s == nil || s.quoter == nil {
		return nil
	}
	dropoffAddress = strings.TrimSpace(dropoffAddress)
	if dropoffAddress == "" {
		return nil
	}

	key := s.cacheKey(tenantID, dropoffAddress)
	if quote := s.fromCache(ctx, key); quote != nil {
		return quote
	}

	quote, err := s.quoter.GetQuote(ctx, QuoteRequest{
		ExternalRef:    tenantID.String(),
		PickupAddress:  pickupAddress,
		DropoffAddress: dropoffAddress,
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "tenant_id", tenantID.String()), "delivery quote unavailable, falling back to base fee")
		}
		return nil
	}

	s.store(ctx, key, quote)
	return quote
}

func (s *Service) cacheKey(tenantID uuid.UUID, dropoffAddress string) string {
	if s.cache == nil {
		return ""
	}
	sum := sha256.Sum256([]byte(strings.ToLower(dropoffAddress)))
	return s.cache.DeliveryQuoteKey(tenantID.String(), hex.EncodeToString(sum[:8]))
}

func (s *Service) fromCache(ctx context.Context, key string) *Quote {
	if s.cache == nil || key == "" {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !redis.IsNil(err) && s.logg != nil {
			s.logg.Warn(ctx, "delivery quote cache read failed")
		}
		return nil
	}
	var quote Quote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		return nil
	}
	return &quote
}

func (s *Service) store(ctx context.Context, key string, quote *Quote) {
	if s.cache == nil || key == "" || quote == nil {
		return
	}
	encoded, err := json.Marshal(quote)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "delivery quote cache write failed")
	}
}
