package tenants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alessaops/storefront-backend/internal/cart"
	"github.com/alessaops/storefront-backend/pkg/db/models"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes tenant lookups for the request path.
type Service interface {
	GetBySlug(ctx context.Context, slug string) (*models.Tenant, error)
}

type service struct {
	repo Repository
}

// NewService builds a tenant service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tenant repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tenant slug is required")
	}
	tenant, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tenant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tenant")
	}
	return tenant, nil
}

// FeeConfigFor maps the tenant's nullable fee columns onto the totals
// pipeline's fee config. Absent fields stay nil; the pipeline substitutes
// defaults on its own.
func FeeConfigFor(tenant *models.Tenant) cart.FeeConfig {
	if tenant == nil {
		return cart.FeeConfig{}
	}
	return cart.FeeConfig{
		PlatformPercentFee: tenant.PlatformPercentFee,
		PlatformFlatFee:    tenant.PlatformFlatFee,
		TaxRate:            tenant.TaxRate,
		DeliveryBaseFee:    tenant.DeliveryBaseFee,
		MinimumOrderValue:  tenant.MinimumOrderValue,
	}
}
