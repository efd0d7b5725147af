package controllers

import (
	"net/http"

	"github.com/alessaops/storefront-backend/api/middleware"
	"github.com/alessaops/storefront-backend/api/responses"
	"github.com/alessaops/storefront-backend/api/validators"
	"github.com/alessaops/storefront-backend/internal/menu"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminUpsertTimeRule replaces a menu item's availability rule.
func AdminUpsertTimeRule(menuService menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tenant := middleware.TenantFromContext(ctx)
		if tenant == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tenant missing from context"))
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		var input menu.TimeRuleInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := menuService.UpsertTimeRule(ctx, tenant.ID, itemID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"item_id":      item.ID.String(),
			"enabled":      item.TimeRuleEnabled,
			"weekdays":     item.TimeRuleWeekdays,
			"window_start": item.TimeRuleStart,
			"window_end":   item.TimeRuleEnd,
			"price":        item.TimeRulePrice,
			"label":        item.TimeRuleLabel,
		})
	}
}
