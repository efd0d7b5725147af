package pricing

import "github.com/alessaops/storefront-backend/pkg/types"

// MergeCustomizationSources collapses an ordered list of customization
// sources into one config. Sources are supplied most-specific first
// (item, then category, then section type, then the global default).
// Removals come from the first source that has any; addons are collected
// across all sources, de-duplicated by id in source-precedence order.
func MergeCustomizationSources(sources ...types.CustomizationConfig) types.CustomizationConfig {
	merged := types.CustomizationConfig{}

	for _, source := range sources {
		if len(merged.Removals) == 0 && len(source.Removals) > 0 {
			merged.Removals = append([]string(nil), source.Removals...)
		}
	}

	seen := map[string]struct{}{}
	for _, source := range sources {
		for _, addon := range source.Addons {
			if _, dup := seen[addon.ID]; dup {
				continue
			}
			seen[addon.ID] = struct{}{}
			merged.Addons = append(merged.Addons, addon)
		}
	}

	return merged
}
