package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alessaops/storefront-backend/internal/cart"
	"github.com/alessaops/storefront-backend/internal/pricing"
	"github.com/alessaops/storefront-backend/internal/schedule"
	"github.com/alessaops/storefront-backend/pkg/db/models"
	"github.com/alessaops/storefront-backend/pkg/enums"
	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/alessaops/storefront-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemView is a menu item as presented to guests: visible, priced at the
// supplied instant, with its merged customization options.
type ItemView struct {
	Item          models.MenuItem
	UnitPrice     string
	Label         *string
	Customization types.CustomizationConfig
}

// LineRequest is one raw cart line from a quote request.
type LineRequest struct {
	ItemID   uuid.UUID
	Quantity int
	AddonIDs []string
	Removals []string
	Note     *string
}

// Service exposes the catalog read surface plus admin rule editing.
type Service interface {
	ListVisible(ctx context.Context, tenantID uuid.UUID, now time.Time) ([]ItemView, error)
	ResolveLines(ctx context.Context, tenantID uuid.UUID, now time.Time, requests []LineRequest) ([]cart.Line, error)
	UpsertTimeRule(ctx context.Context, tenantID, itemID uuid.UUID, input TimeRuleInput) (*models.MenuItem, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService builds a menu service backed by the provided repository.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) ListVisible(ctx context.Context, tenantID uuid.UUID, now time.Time) ([]ItemView, error) {
	if tenantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tenant id is required")
	}

	items, err := s.repo.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	profiles, err := s.repo.ListCustomizationProfiles(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customization profiles")
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		rule := s.ruleFromModel(ctx, item)
		if !pricing.Visible(rule, now) {
			continue
		}

		customization := customizationFor(profiles, item)
		quote, err := pricing.Resolve(itemSnapshot(item), rule, now, nil, customization)
		if err != nil {
			return nil, err
		}

		views = append(views, ItemView{
			Item:          item,
			UnitPrice:     quote.UnitPrice.StringFixed(2),
			Label:         quote.Label,
			Customization: customization,
		})
	}
	return views, nil
}

func (s *service) ResolveLines(ctx context.Context, tenantID uuid.UUID, now time.Time, requests []LineRequest) ([]cart.Line, error) {
	if tenantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tenant id is required")
	}
	if len(requests) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart must contain at least one line")
	}

	profiles, err := s.repo.ListCustomizationProfiles(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customization profiles")
	}

	lines := make([]cart.Line, 0, len(requests))
	for _, request := range requests {
		if request.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be positive")
		}

		item, err := s.repo.FindByID(ctx, tenantID, request.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
		}
		if !item.IsActive {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item is not available")
		}

		rule := s.ruleFromModel(ctx, *item)
		if !pricing.Visible(rule, now) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item is outside its availability window")
		}

		customization := customizationFor(profiles, *item)
		quote, err := pricing.Resolve(itemSnapshot(*item), rule, now, request.AddonIDs, customization)
		if err != nil {
			return nil, err
		}

		lines = append(lines, cart.Line{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: quote.UnitPrice,
			Quantity:  request.Quantity,
			Removals:  request.Removals,
			AddonIDs:  request.AddonIDs,
			Note:      request.Note,
		})
	}
	return lines, nil
}

func itemSnapshot(item models.MenuItem) pricing.Item {
	return pricing.Item{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		BasePrice: item.BasePrice,
	}
}

// ruleFromModel decodes the embedded time-rule columns. A window bound
// that fails to parse is dropped rather than failing the read; the
// evaluator then treats the rule as all-day, which keeps a half-broken
// rule from hiding the item.
func (s *service) ruleFromModel(ctx context.Context, item models.MenuItem) schedule.TimeRule {
	rule := schedule.TimeRule{
		Enabled:        item.TimeRuleEnabled,
		ActiveWeekdays: item.TimeRuleWeekdays,
		OverridePrice:  item.TimeRulePrice,
		Label:          item.TimeRuleLabel,
	}
	rule.WindowStart = s.parseWindowBound(ctx, item, item.TimeRuleStart)
	rule.WindowEnd = s.parseWindowBound(ctx, item, item.TimeRuleEnd)
	return rule
}

func (s *service) parseWindowBound(ctx context.Context, item models.MenuItem, raw *string) *types.TimeOfDay {
	if raw == nil {
		return nil
	}
	parsed, err := types.ParseTimeOfDay(*raw)
	if err != nil {
		if s.logg != nil {
			ctx = s.logg.WithFields(ctx, map[string]any{
				"item_id": item.ID.String(),
				"value":   *raw,
			})
			s.logg.Warn(ctx, "ignoring malformed time rule window bound")
		}
		return nil
	}
	return &parsed
}

// customizationFor assembles the ordered sources for an item and merges
// them. Precedence: item-specific, then category, then section type, then
// the tenant-wide default.
func customizationFor(profiles []models.CustomizationProfile, item models.MenuItem) types.CustomizationConfig {
	byScope := func(scope enums.CustomizationScope, key string) (types.CustomizationConfig, bool) {
		for _, profile := range profiles {
			if profile.Scope == scope && strings.EqualFold(profile.Key, key) {
				return profile.Config, true
			}
		}
		return types.CustomizationConfig{}, false
	}

	sources := make([]types.CustomizationConfig, 0, 4)
	if config, ok := byScope(enums.CustomizationScopeItem, item.ID.String()); ok {
		sources = append(sources, config)
	}
	if config, ok := byScope(enums.CustomizationScopeCategory, item.Category); ok {
		sources = append(sources, config)
	}
	if config, ok := byScope(enums.CustomizationScopeSection, item.SectionType); ok {
		sources = append(sources, config)
	}
	if config, ok := byScope(enums.CustomizationScopeGlobal, ""); ok {
		sources = append(sources, config)
	}
	return pricing.MergeCustomizationSources(sources...)
}
