package tenants

import (
	"context"
	"testing"

	"github.com/alessaops/storefront-backend/internal/cart"
	"github.com/alessaops/storefront-backend/pkg/db/models"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeRepo struct {
	tenants map[string]*models.Tenant
}

func (f *fakeRepo) FindBySlug(_ context.Context, slug string) (*models.Tenant, error) {
	if tenant, ok := f.tenants[slug]; ok {
		return tenant, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Tenant, error) {
	for _, tenant := range f.tenants {
		if tenant.ID == id {
			return tenant, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestGetBySlugNormalizesInput(t *testing.T) {
	tenant := &models.Tenant{ID: uuid.New(), Slug: "taqueria"}
	svc, err := NewService(&fakeRepo{tenants: map[string]*models.Tenant{"taqueria": tenant}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	got, err := svc.GetBySlug(context.Background(), "  Taqueria ")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != tenant.ID {
		t.Fatalf("unexpected tenant %+v", got)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc, err := NewService(&fakeRepo{tenants: map[string]*models.Tenant{}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.GetBySlug(context.Background(), "missing")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = svc.GetBySlug(context.Background(), "   ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank slug, got %v", err)
	}
}

func TestFeeConfigFor(t *testing.T) {
	taxRate := decimal.RequireFromString("0.0700")
	tenant := &models.Tenant{TaxRate: &taxRate}

	fees := FeeConfigFor(tenant)
	if fees.TaxRate == nil || !fees.TaxRate.Equal(taxRate) {
		t.Fatalf("expected tenant tax rate carried over, got %v", fees.TaxRate)
	}
	if fees.PlatformPercentFee != nil {
		t.Fatalf("absent fields must stay nil for default substitution")
	}

	if got := FeeConfigFor(nil); got != (cart.FeeConfig{}) {
		t.Fatalf("nil tenant should yield empty fee config")
	}
}
