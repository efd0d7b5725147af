package middleware

import (
	"context"
	"net/http"

	"github.com/alessaops/storefront-backend/api/responses"
	"github.com/alessaops/storefront-backend/internal/tenants"
	"github.com/alessaops/storefront-backend/pkg/db/models"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/alessaops/storefront-backend/pkg/logger"
)

const tenantHeader = "X-Tenant"

type contextKey string

const ctxTenant contextKey = "tenant"

// TenantFromContext returns the tenant resolved by TenantContext, or nil.
func TenantFromContext(ctx context.Context) *models.Tenant {
	if ctx == nil {
		return nil
	}
	if tenant, ok := ctx.Value(ctxTenant).(*models.Tenant); ok {
		return tenant
	}
	return nil
}

// WithTenant injects the tenant into the context for downstream handlers.
func WithTenant(ctx context.Context, tenant *models.Tenant) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxTenant, tenant)
}

// TenantContext resolves the storefront tenant from the X-Tenant header and
// makes it available to every handler below it.
func TenantContext(svc tenants.Service, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			slug := r.Header.Get(tenantHeader)
			if slug == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Tenant header is required"))
				return
			}

			tenant, err := svc.GetBySlug(ctx, slug)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			ctx = WithTenant(ctx, tenant)
			if logg != nil {
				ctx = logg.WithTenantID(ctx, tenant.ID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
