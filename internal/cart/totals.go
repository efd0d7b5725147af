package cart

import (
	"github.com/alessaops/storefront-backend/pkg/enums"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fee defaults substituted when a tenant leaves a field unset.
var (
	DefaultPlatformPercentFee = decimal.NewFromFloat(0.029)
	DefaultPlatformFlatFee    = decimal.NewFromFloat(0.30)
	DefaultTaxRate            = decimal.NewFromFloat(0.0825)
	DefaultDeliveryBaseFee    = decimal.NewFromFloat(4.99)
	DefaultMinimumOrderValue  = decimal.Zero
)

// Line is a priced purchase intent for one menu item.
type Line struct {
	ItemID    uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Removals  []string
	AddonIDs  []string
	Note      *string
}

// FeeConfig carries the tenant's fee settings. Every field is optional;
// nil fields fall back to the documented defaults exactly once per
// computation.
type FeeConfig struct {
	PlatformPercentFee *decimal.Decimal
	PlatformFlatFee    *decimal.Decimal
	TaxRate            *decimal.Decimal
	DeliveryBaseFee    *decimal.Decimal
	MinimumOrderValue  *decimal.Decimal
}

// UsesDefaults reports whether any field is absent and will be substituted.
func (f FeeConfig) UsesDefaults() bool {
	return f.PlatformPercentFee == nil || f.PlatformFlatFee == nil ||
		f.TaxRate == nil || f.DeliveryBaseFee == nil || f.MinimumOrderValue == nil
}

type resolvedFeeConfig struct {
	platformPercentFee decimal.Decimal
	platformFlatFee    decimal.Decimal
	taxRate            decimal.Decimal
	deliveryBaseFee    decimal.Decimal
	minimumOrderValue  decimal.Decimal
}

func (f FeeConfig) resolve() resolvedFeeConfig {
	resolved := resolvedFeeConfig{
		platformPercentFee: DefaultPlatformPercentFee,
		platformFlatFee:    DefaultPlatformFlatFee,
		taxRate:            DefaultTaxRate,
		deliveryBaseFee:    DefaultDeliveryBaseFee,
		minimumOrderValue:  DefaultMinimumOrderValue,
	}
	if f.PlatformPercentFee != nil {
		resolved.platformPercentFee = *f.PlatformPercentFee
	}
	if f.PlatformFlatFee != nil {
		resolved.platformFlatFee = *f.PlatformFlatFee
	}
	if f.TaxRate != nil {
		resolved.taxRate = *f.TaxRate
	}
	if f.DeliveryBaseFee != nil {
		resolved.deliveryBaseFee = *f.DeliveryBaseFee
	}
	if f.MinimumOrderValue != nil {
		resolved.minimumOrderValue = *f.MinimumOrderValue
	}
	return resolved
}

// TipInput is the guest's tip choice. CustomAmount is the raw user-entered
// string and is only consulted when Selection is custom; an unparseable or
// negative amount is coerced to zero so checkout is never interrupted.
type TipInput struct {
	Selection    enums.TipSelection
	CustomAmount string
}

// Totals is the itemized order total. Amounts are unrounded; two-decimal
// rounding is applied at presentation time only.
type Totals struct {
	Subtotal             decimal.Decimal
	DeliveryFee          decimal.Decimal
	PlatformFee          decimal.Decimal
	TaxAmount            decimal.Decimal
	TipAmount            decimal.Decimal
	TotalAmount          decimal.Decimal
	MeetsDeliveryMinimum bool
}

// ComputeTotals runs the order totals pipeline in its fixed stage order:
// subtotal, delivery fee, platform fee, tax on the fee-inclusive base, tip
// on the subtotal alone, then the grand total. Reordering the stages
// changes the result and is not permitted.
func ComputeTotals(lines []Line, fees FeeConfig, fulfillment enums.FulfillmentMethod, tip TipInput, deliveryQuote *decimal.Decimal) (Totals, error) {
	if !fulfillment.IsValid() {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown fulfillment method")
	}
	if !tip.Selection.IsValid() {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown tip selection")
	}

	resolved := fees.resolve()

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be positive")
		}
		if line.UnitPrice.IsNegative() {
			return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "line unit price cannot be negative")
		}
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	deliveryFee := decimal.Zero
	if fulfillment == enums.FulfillmentMethodDelivery {
		// A zero quote is a real override of the base fee, not an absence.
		if deliveryQuote != nil {
			deliveryFee = *deliveryQuote
		} else {
			deliveryFee = resolved.deliveryBaseFee
		}
	}

	platformFee := decimal.Zero
	if !subtotal.IsZero() {
		platformFee = subtotal.Mul(resolved.platformPercentFee).Add(resolved.platformFlatFee)
	}

	// Tax applies to the fee-inclusive base. Platform and delivery fees are
	// taxed as part of the transaction.
	taxBase := subtotal.Add(deliveryFee).Add(platformFee)
	taxAmount := taxBase.Mul(resolved.taxRate)

	tipAmount := computeTip(tip, subtotal)

	total := subtotal.Add(deliveryFee).Add(platformFee).Add(taxAmount).Add(tipAmount)

	meetsMinimum := true
	if fulfillment == enums.FulfillmentMethodDelivery {
		meetsMinimum = subtotal.GreaterThanOrEqual(resolved.minimumOrderValue)
	}

	return Totals{
		Subtotal:             subtotal,
		DeliveryFee:          deliveryFee,
		PlatformFee:          platformFee,
		TaxAmount:            taxAmount,
		TipAmount:            tipAmount,
		TotalAmount:          total,
		MeetsDeliveryMinimum: meetsMinimum,
	}, nil
}

// computeTip always works from the subtotal, never from the tax-inclusive
// base.
func computeTip(tip TipInput, subtotal decimal.Decimal) decimal.Decimal {
	switch tip.Selection {
	case enums.TipSelectionNone:
		return decimal.Zero
	case enums.TipSelectionCustom:
		amount, err := decimal.NewFromString(tip.CustomAmount)
		if err != nil || amount.IsNegative() {
			return decimal.Zero
		}
		return amount
	}
	percent := decimal.NewFromInt(int64(tip.Selection.Percent()))
	return subtotal.Mul(percent).Shift(-2)
}
