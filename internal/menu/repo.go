package menu

import (
	"context"

	"github.com/alessaops/storefront-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository reads and writes the tenant catalog.
type Repository interface {
	ListActiveByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.MenuItem, error)
	FindByID(ctx context.Context, tenantID, itemID uuid.UUID) (*models.MenuItem, error)
	Save(ctx context.Context, item *models.MenuItem) error
	ListCustomizationProfiles(ctx context.Context, tenantID uuid.UUID) ([]models.CustomizationProfile, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository over the shared connection.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActiveByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active", tenantID).
		Order("category, name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, tenantID, itemID uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Save(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) ListCustomizationProfiles(ctx context.Context, tenantID uuid.UUID) ([]models.CustomizationProfile, error) {
	var profiles []models.CustomizationProfile
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
