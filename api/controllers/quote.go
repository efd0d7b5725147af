package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/alessaops/storefront-backend/api/middleware"
	"github.com/alessaops/storefront-backend/api/responses"
	"github.com/alessaops/storefront-backend/api/validators"
	"github.com/alessaops/storefront-backend/internal/cart"
	"github.com/alessaops/storefront-backend/internal/delivery"
	"github.com/alessaops/storefront-backend/internal/menu"
	"github.com/alessaops/storefront-backend/internal/tenants"
	"github.com/alessaops/storefront-backend/pkg/db/models"
	"github.com/alessaops/storefront-backend/pkg/enums"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/alessaops/storefront-backend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type quoteLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required"`
	AddonIDs []string  `json:"addon_ids"`
	Removals []string  `json:"removals"`
	Note     *string   `json:"note"`
}

type quoteRequest struct {
	Fulfillment     string             `json:"fulfillment" validate:"required"`
	TipSelection    string             `json:"tip_selection"`
	TipCustomAmount string             `json:"tip_custom_amount"`
	DropoffAddress  string             `json:"dropoff_address"`
	Lines           []quoteLineRequest `json:"lines" validate:"required,min=1"`
}

type quoteResponse struct {
	Subtotal             string  `json:"subtotal"`
	DeliveryFee          string  `json:"delivery_fee"`
	PlatformFee          string  `json:"platform_fee"`
	TaxAmount            string  `json:"tax_amount"`
	TipAmount            string  `json:"tip_amount"`
	TotalAmount          string  `json:"total_amount"`
	MeetsDeliveryMinimum bool    `json:"meets_delivery_minimum"`
	DeliveryQuoteRef     *string `json:"delivery_quote_ref,omitempty"`
}

// DeliveryQuoter is the quote lookup the controller depends on.
type DeliveryQuoter interface {
	QuoteFor(ctx context.Context, tenantID uuid.UUID, pickupAddress, dropoffAddress string) *delivery.Quote
}

// CartQuote prices a cart: availability-checked line prices, then the order
// totals pipeline. The clock is read once so every line and the totals see
// the same instant.
func CartQuote(menuService menu.Service, deliveryService DeliveryQuoter, quoteMetrics *metrics.QuoteMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()

		tenant := middleware.TenantFromContext(ctx)
		if tenant == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tenant missing from context"))
			return
		}

		var req quoteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			quoteMetrics.IncFailure(req.Fulfillment)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		fulfillment, err := enums.ParseFulfillmentMethod(req.Fulfillment)
		if err != nil {
			quoteMetrics.IncFailure(req.Fulfillment)
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fulfillment method"))
			return
		}
		tipSelection := enums.TipSelectionNone
		if req.TipSelection != "" {
			tipSelection, err = enums.ParseTipSelection(req.TipSelection)
			if err != nil {
				quoteMetrics.IncFailure(req.Fulfillment)
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tip selection"))
				return
			}
		}

		now := time.Now()

		requests := make([]menu.LineRequest, 0, len(req.Lines))
		for _, line := range req.Lines {
			requests = append(requests, menu.LineRequest{
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				AddonIDs: line.AddonIDs,
				Removals: line.Removals,
				Note:     line.Note,
			})
		}

		lines, err := menuService.ResolveLines(ctx, tenant.ID, now, requests)
		if err != nil {
			quoteMetrics.IncFailure(req.Fulfillment)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		fees := tenants.FeeConfigFor(tenant)
		if fees.UsesDefaults() && logg != nil {
			logg.Info(ctx, "tenant fee config incomplete, using platform defaults")
		}

		var deliveryQuoteFee *decimal.Decimal
		var deliveryQuoteRef *string
		if fulfillment == enums.FulfillmentMethodDelivery && deliveryService != nil {
			if quote := deliveryService.QuoteFor(ctx, tenant.ID, pickupAddress(tenant), req.DropoffAddress); quote != nil {
				fee := quote.Fee
				deliveryQuoteFee = &fee
				if quote.ProviderRef != "" {
					ref := quote.ProviderRef
					deliveryQuoteRef = &ref
				}
			}
		}

		totals, err := cart.ComputeTotals(lines, fees, fulfillment, cart.TipInput{
			Selection:    tipSelection,
			CustomAmount: req.TipCustomAmount,
		}, deliveryQuoteFee)
		if err != nil {
			quoteMetrics.IncFailure(req.Fulfillment)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quoteMetrics.IncSuccess(fulfillment.String())
		quoteMetrics.ObserveDuration(fulfillment.String(), time.Since(start))

		responses.WriteSuccess(w, quoteResponse{
			Subtotal:             totals.Subtotal.StringFixed(2),
			DeliveryFee:          totals.DeliveryFee.StringFixed(2),
			PlatformFee:          totals.PlatformFee.StringFixed(2),
			TaxAmount:            totals.TaxAmount.StringFixed(2),
			TipAmount:            totals.TipAmount.StringFixed(2),
			TotalAmount:          totals.TotalAmount.StringFixed(2),
			MeetsDeliveryMinimum: totals.MeetsDeliveryMinimum,
			DeliveryQuoteRef:     deliveryQuoteRef,
		})
	}
}

func pickupAddress(tenant *models.Tenant) string {
	if tenant == nil || tenant.PickupAddress == nil {
		return ""
	}
	return *tenant.PickupAddress
}
