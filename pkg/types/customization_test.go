package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCustomizationConfigValidate(t *testing.T) {
	valid := CustomizationConfig{
		Removals: []string{"onion"},
		Addons: []CustomizationAddon{
			{ID: "salsa", Label: "Extra Salsa", UnitPrice: decimal.RequireFromString("0.50")},
			{ID: "queso", Label: "Queso", UnitPrice: decimal.Zero},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		config CustomizationConfig
	}{
		{"empty addon id", CustomizationConfig{Addons: []CustomizationAddon{{ID: " "}}}},
		{"duplicate addon id", CustomizationConfig{Addons: []CustomizationAddon{{ID: "salsa"}, {ID: "salsa"}}}},
		{"negative price", CustomizationConfig{Addons: []CustomizationAddon{{ID: "salsa", UnitPrice: decimal.RequireFromString("-0.50")}}}},
	}
	for _, tc := range cases {
		if err := tc.config.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestCustomizationConfigRoundTrip(t *testing.T) {
	config := CustomizationConfig{
		Removals: []string{"onion", "cilantro"},
		Addons: []CustomizationAddon{
			{ID: "salsa", Label: "Extra Salsa", UnitPrice: decimal.RequireFromString("0.75")},
		},
	}

	value, err := config.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded CustomizationConfig
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(decoded.Removals) != 2 || len(decoded.Addons) != 1 {
		t.Fatalf("unexpected round trip result %+v", decoded)
	}
	if !decoded.Addons[0].UnitPrice.Equal(decimal.RequireFromString("0.75")) {
		t.Fatalf("addon price lost in round trip: %s", decoded.Addons[0].UnitPrice)
	}
}

func TestCustomizationConfigIsZero(t *testing.T) {
	if !(CustomizationConfig{}).IsZero() {
		t.Fatalf("empty config should be zero")
	}
	if (CustomizationConfig{Removals: []string{"onion"}}).IsZero() {
		t.Fatalf("config with removals is not zero")
	}
}
