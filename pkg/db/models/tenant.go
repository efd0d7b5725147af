package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant is one storefront. Fee columns are nullable on purpose: absent
// values are replaced with platform defaults at computation time, never
// written back.
type Tenant struct {
	ID                 uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug               string           `gorm:"column:slug;not null;uniqueIndex"`
	Name               string           `gorm:"column:name;not null"`
	PickupAddress      *string          `gorm:"column:pickup_address"`
	PlatformPercentFee *decimal.Decimal `gorm:"column:platform_percent_fee;type:numeric(6,4)"`
	PlatformFlatFee    *decimal.Decimal `gorm:"column:platform_flat_fee;type:numeric(10,2)"`
	TaxRate            *decimal.Decimal `gorm:"column:tax_rate;type:numeric(6,4)"`
	DeliveryBaseFee    *decimal.Decimal `gorm:"column:delivery_base_fee;type:numeric(10,2)"`
	MinimumOrderValue  *decimal.Decimal `gorm:"column:minimum_order_value;type:numeric(10,2)"`
	CreatedAt          time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
