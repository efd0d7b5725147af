package controllers

import (
	"net/http"
	"time"

	"github.com/alessaops/storefront-backend/api/middleware"
	"github.com/alessaops/storefront-backend/api/responses"
	"github.com/alessaops/storefront-backend/internal/menu"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/alessaops/storefront-backend/pkg/types"
)

type menuItemResponse struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	Description   *string                   `json:"description,omitempty"`
	Category      string                    `json:"category"`
	UnitPrice     string                    `json:"unit_price"`
	PriceLabel    *string                   `json:"price_label,omitempty"`
	Customization types.CustomizationConfig `json:"customization"`
}

// Menu serves the tenant's currently visible catalog priced at request time.
func Menu(menuService menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tenant := middleware.TenantFromContext(ctx)
		if tenant == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tenant missing from context"))
			return
		}

		views, err := menuService.ListVisible(ctx, tenant.ID, time.Now())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items := make([]menuItemResponse, 0, len(views))
		for _, view := range views {
			items = append(items, menuItemResponse{
				ID:            view.Item.ID.String(),
				Name:          view.Item.Name,
				Description:   view.Item.Description,
				Category:      view.Item.Category,
				UnitPrice:     view.UnitPrice,
				PriceLabel:    view.Label,
				Customization: view.Customization,
			})
		}

		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}
