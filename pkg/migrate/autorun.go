package migrate

import (
	"context"
	"fmt"

	"github.com/alessaops/storefront-backend/pkg/config"
	"github.com/alessaops/storefront-backend/pkg/db"
	"github.com/alessaops/storefront-backend/pkg/db/models"
	"github.com/alessaops/storefront-backend/pkg/logger"
)

// MaybeRunDev applies schema auto-migration when the feature flag is set.
// Production schema changes are managed out of band; this only exists so a
// fresh dev database comes up ready.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if cfg == nil || client == nil {
		return fmt.Errorf("config and db client are required")
	}
	if !cfg.FeatureFlags.AutoMigrate || cfg.App.IsProd() {
		return nil
	}

	if err := client.DB().WithContext(ctx).AutoMigrate(
		&models.Tenant{},
		&models.MenuItem{},
		&models.CustomizationProfile{},
	); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "dev auto-migration applied")
	}
	return nil
}
