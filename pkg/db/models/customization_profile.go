package models

import (
	"time"

	"github.com/alessaops/storefront-backend/pkg/enums"
	"github.com/alessaops/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

// CustomizationProfile attaches removal/addon options to a scope: one item,
// a category, a section type, or the tenant-wide default (empty key).
type CustomizationProfile struct {
	ID        uuid.UUID                 `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID  uuid.UUID                 `gorm:"column:tenant_id;type:uuid;not null;index"`
	Scope     enums.CustomizationScope  `gorm:"column:scope;not null"`
	Key       string                    `gorm:"column:key;not null;default:''"`
	Config    types.CustomizationConfig `gorm:"column:config;type:jsonb;not null"`
	CreatedAt time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}
