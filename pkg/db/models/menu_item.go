package models

import (
	"time"

	"github.com/alessaops/storefront-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a catalog listing. The time_rule_* columns embed the item's
// recurring weekly window; window bounds are stored as "HH:MM" strings and
// parsed at the read boundary.
type MenuItem struct {
	ID               uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID         uuid.UUID        `gorm:"column:tenant_id;type:uuid;not null;index"`
	Name             string           `gorm:"column:name;not null"`
	Description      *string          `gorm:"column:description"`
	Category         string           `gorm:"column:category;not null"`
	SectionType      string           `gorm:"column:section_type;not null;default:''"`
	BasePrice        decimal.Decimal  `gorm:"column:base_price;type:numeric(10,2);not null"`
	IsActive         bool             `gorm:"column:is_active;not null;default:true"`
	TimeRuleEnabled  bool             `gorm:"column:time_rule_enabled;not null;default:false"`
	TimeRuleWeekdays types.WeekdaySet `gorm:"column:time_rule_weekdays;type:jsonb"`
	TimeRuleStart    *string          `gorm:"column:time_rule_start"`
	TimeRuleEnd      *string          `gorm:"column:time_rule_end"`
	TimeRulePrice    *decimal.Decimal `gorm:"column:time_rule_price;type:numeric(10,2)"`
	TimeRuleLabel    *string          `gorm:"column:time_rule_label"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
