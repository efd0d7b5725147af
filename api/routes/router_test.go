package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alessaops/storefront-backend/internal/cart"
	"github.com/alessaops/storefront-backend/internal/delivery"
	"github.com/alessaops/storefront-backend/internal/menu"
	"github.com/alessaops/storefront-backend/pkg/config"
	"github.com/alessaops/storefront-backend/pkg/db/models"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/google/uuid"
)

type stubTenantService struct{}

func (stubTenantService) GetBySlug(_ context.Context, slug string) (*models.Tenant, error) {
	if slug == "taqueria" {
		return &models.Tenant{ID: uuid.New(), Slug: slug}, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tenant not found")
}

type stubMenuService struct{}

func (stubMenuService) ListVisible(context.Context, uuid.UUID, time.Time) ([]menu.ItemView, error) {
	return nil, nil
}

func (stubMenuService) ResolveLines(context.Context, uuid.UUID, time.Time, []menu.LineRequest) ([]cart.Line, error) {
	return nil, nil
}

func (stubMenuService) UpsertTimeRule(context.Context, uuid.UUID, uuid.UUID, menu.TimeRuleInput) (*models.MenuItem, error) {
	return nil, nil
}

type stubQuoter struct{}

func (stubQuoter) QuoteFor(context.Context, uuid.UUID, string, string) *delivery.Quote {
	return nil
}

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "dev"
	return NewRouter(cfg, nil, nil, nil, nil, stubTenantService{}, stubMenuService{}, stubQuoter{}, nil)
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Storefront-Env"); got != "dev" {
		t.Fatalf("unexpected env header %q", got)
	}
}

func TestRouterHealthReadyDegradedWithoutBackends(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without db/redis, got %d", resp.Code)
	}
}

func TestRouterMenuRequiresTenantHeader(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without tenant header, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	req.Header.Set("X-Tenant", "taqueria")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with tenant header, got %d", resp.Code)
	}
}

func TestRouterUnknownTenant(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	req.Header.Set("X-Tenant", "missing")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown tenant, got %d", resp.Code)
	}
}
