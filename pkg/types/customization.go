package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomizationAddon is a priced extra a guest can attach to a line.
type CustomizationAddon struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CustomizationConfig holds the removal and addon options offered for an
// item, a category, or a whole menu section.
type CustomizationConfig struct {
	Removals []string             `json:"removals"`
	Addons   []CustomizationAddon `json:"addons"`
}

// Validate enforces the closed addon shape: unique non-empty ids and
// non-negative prices.
func (c CustomizationConfig) Validate() error {
	seen := map[string]struct{}{}
	for _, addon := range c.Addons {
		id := strings.TrimSpace(addon.ID)
		if id == "" {
			return fmt.Errorf("addon id is required")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("addon id %q repeated", id)
		}
		seen[id] = struct{}{}
		if addon.UnitPrice.IsNegative() {
			return fmt.Errorf("addon %q has negative price", id)
		}
	}
	return nil
}

// IsZero reports whether the config carries no options at all.
func (c CustomizationConfig) IsZero() bool {
	return len(c.Removals) == 0 && len(c.Addons) == 0
}

// Value serializes the config to JSON.
func (c CustomizationConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan decodes JSONB into the config.
func (c *CustomizationConfig) Scan(value interface{}) error {
	if value == nil {
		*c = CustomizationConfig{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, c)
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
