package pricing

import (
	"time"

	"github.com/alessaops/storefront-backend/internal/schedule"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/alessaops/storefront-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the catalog snapshot the resolver prices against.
type Item struct {
	ID        uuid.UUID
	Name      string
	Category  string
	BasePrice decimal.Decimal
}

// Quote is the resolved per-unit price for an item plus the active rule
// label, if any. The label is informational and carries no pricing effect.
type Quote struct {
	UnitPrice decimal.Decimal
	Label     *string
}

// Resolve computes the effective per-unit price of an item at the supplied
// instant. The time rule's override price applies only while the rule is
// active; selected addon upcharges are strictly additive on top. Addon ids
// not present in the customization config are ignored. The result is
// rounded half-up to two decimals here so the charged unit price and the
// displayed unit price are always identical.
func Resolve(item Item, rule schedule.TimeRule, now time.Time, selectedAddonIDs []string, customization types.CustomizationConfig) (Quote, error) {
	if item.BasePrice.IsNegative() {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "item base price cannot be negative")
	}

	base := item.BasePrice
	var label *string
	if schedule.IsActive(rule, now) {
		if rule.OverridePrice != nil {
			base = *rule.OverridePrice
		}
		label = rule.Label
	}

	selected := make(map[string]struct{}, len(selectedAddonIDs))
	for _, id := range selectedAddonIDs {
		selected[id] = struct{}{}
	}

	upcharge := decimal.Zero
	for _, addon := range customization.Addons {
		if _, ok := selected[addon.ID]; ok {
			upcharge = upcharge.Add(addon.UnitPrice)
		}
	}

	return Quote{
		UnitPrice: base.Add(upcharge).Round(2),
		Label:     label,
	}, nil
}

// Visible reports whether the item should appear in the menu at all. An
// item whose rule is enabled is an exclusive, window-only offering: it is
// shown only while the rule is active. Items without an enabled rule are
// always shown.
func Visible(rule schedule.TimeRule, now time.Time) bool {
	if !rule.Enabled {
		return true
	}
	return schedule.IsActive(rule, now)
}
