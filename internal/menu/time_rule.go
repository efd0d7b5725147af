package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/alessaops/storefront-backend/pkg/db/models"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/alessaops/storefront-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TimeRuleInput is the admin payload for replacing an item's time rule.
// Window bounds are "HH:MM" strings; an empty bound clears that side.
type TimeRuleInput struct {
	Enabled       bool             `json:"enabled"`
	Weekdays      types.WeekdaySet `json:"weekdays"`
	WindowStart   *string          `json:"window_start"`
	WindowEnd     *string          `json:"window_end"`
	OverridePrice *decimal.Decimal `json:"override_price"`
	Label         *string          `json:"label"`
}

func (in TimeRuleInput) validate() error {
	if err := in.Weekdays.Validate(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid weekdays")
	}
	if err := validateWindowBound(in.WindowStart); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid window start")
	}
	if err := validateWindowBound(in.WindowEnd); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid window end")
	}
	if in.OverridePrice != nil && in.OverridePrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "override price must not be negative")
	}
	return nil
}

func validateWindowBound(raw *string) error {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	_, err := types.ParseTimeOfDay(*raw)
	return err
}

func (s *service) UpsertTimeRule(ctx context.Context, tenantID, itemID uuid.UUID, input TimeRuleInput) (*models.MenuItem, error) {
	if tenantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tenant id is required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, tenantID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}

	item.TimeRuleEnabled = input.Enabled
	item.TimeRuleWeekdays = input.Weekdays
	item.TimeRuleStart = normalizeWindowBound(input.WindowStart)
	item.TimeRuleEnd = normalizeWindowBound(input.WindowEnd)
	item.TimeRulePrice = input.OverridePrice
	item.TimeRuleLabel = input.Label

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save menu item")
	}
	return item, nil
}

func normalizeWindowBound(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
