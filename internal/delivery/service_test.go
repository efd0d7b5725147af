package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type fakeQuoter struct {
	quote *Quote
	err   error
	calls int
}

func (f *fakeQuoter) GetQuote(_ context.Context, _ QuoteRequest) (*Quote, error) {
	f.calls++
	return f.quote, f.err
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if value, ok := f.values[key]; ok {
		return value, nil
	}
	return "", redis.Nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeCache) DeliveryQuoteKey(tenantID, fingerprint string) string {
	return "sf:delivery_quote:" + tenantID + ":" + fingerprint
}

func TestQuoteForCachesProviderResult(t *testing.T) {
	quoter := &fakeQuoter{quote: &Quote{Fee: decimal.RequireFromString("7.25"), EstimatedMinutes: 25}}
	cache := newFakeCache()
	svc := NewService(quoter, cache, time.Minute, nil)
	tenantID := uuid.New()

	first := svc.QuoteFor(context.Background(), tenantID, "1 Main St", "42 Elm St")
	if first == nil || first.Fee.StringFixed(2) != "7.25" {
		t.Fatalf("expected provider quote, got %+v", first)
	}
	second := svc.QuoteFor(context.Background(), tenantID, "1 Main St", "42 Elm St")
	if second == nil || second.Fee.StringFixed(2) != "7.25" {
		t.Fatalf("expected cached quote, got %+v", second)
	}
	if quoter.calls != 1 {
		t.Fatalf("expected a single provider call, got %d", quoter.calls)
	}
}

func TestQuoteForCacheKeyIsAddressInsensitiveToCase(t *testing.T) {
	quoter := &fakeQuoter{quote: &Quote{Fee: decimal.RequireFromString("5.00")}}
	cache := newFakeCache()
	svc := NewService(quoter, cache, time.Minute, nil)
	tenantID := uuid.New()

	svc.QuoteFor(context.Background(), tenantID, "", "42 Elm St")
	svc.QuoteFor(context.Background(), tenantID, "", "42 ELM ST")
	if quoter.calls != 1 {
		t.Fatalf("expected case-folded addresses to share a cache entry, got %d calls", quoter.calls)
	}
}

func TestQuoteForProviderFailureReturnsNil(t *testing.T) {
	quoter := &fakeQuoter{err: errors.New("provider down")}
	svc := NewService(quoter, newFakeCache(), time.Minute, nil)

	if quote := svc.QuoteFor(context.Background(), uuid.New(), "", "42 Elm St"); quote != nil {
		t.Fatalf("expected nil quote on provider failure, got %+v", quote)
	}
}

func TestQuoteForWithoutProvider(t *testing.T) {
	svc := NewService(nil, newFakeCache(), time.Minute, nil)
	if quote := svc.QuoteFor(context.Background(), uuid.New(), "", "42 Elm St"); quote != nil {
		t.Fatalf("expected nil quote when provider unconfigured, got %+v", quote)
	}
}

func TestQuoteForBlankDropoff(t *testing.T) {
	quoter := &fakeQuoter{quote: &Quote{Fee: decimal.RequireFromString("5.00")}}
	svc := NewService(quoter, newFakeCache(), time.Minute, nil)
	if quote := svc.QuoteFor(context.Background(), uuid.New(), "", "  "); quote != nil {
		t.Fatalf("expected nil quote for blank dropoff, got %+v", quote)
	}
	if quoter.calls != 0 {
		t.Fatalf("provider should not be called for blank dropoff")
	}
}

func TestQuoteForWorksWithoutCache(t *testing.T) {
	quoter := &fakeQuoter{quote: &Quote{Fee: decimal.RequireFromString("3.10")}}
	svc := NewService(quoter, nil, time.Minute, nil)
	quote := svc.QuoteFor(context.Background(), uuid.New(), "", "42 Elm St")
	if quote == nil || quote.Fee.StringFixed(2) != "3.10" {
		t.Fatalf("expected direct provider quote without cache, got %+v", quote)
	}
}
