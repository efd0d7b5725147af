package enums

import "testing"

func TestParseFulfillmentMethod(t *testing.T) {
	method, err := ParseFulfillmentMethod("delivery")
	if err != nil {
		t.Fatalf("ParseFulfillmentMethod: %v", err)
	}
	if method != FulfillmentMethodDelivery {
		t.Fatalf("unexpected method %s", method)
	}
	if _, err := ParseFulfillmentMethod("teleport"); err == nil {
		t.Fatalf("expected error for unknown method")
	}
	if FulfillmentMethod("curbside").IsValid() {
		t.Fatalf("unknown method should not be valid")
	}
}

func TestParseTipSelection(t *testing.T) {
	for raw, percent := range map[string]int{"15": 15, "18": 18, "20": 20} {
		selection, err := ParseTipSelection(raw)
		if err != nil {
			t.Fatalf("ParseTipSelection(%q): %v", raw, err)
		}
		if selection.Percent() != percent {
			t.Fatalf("expected %d%% for %q, got %d", percent, raw, selection.Percent())
		}
	}
	if _, err := ParseTipSelection("99"); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
	if TipSelectionNone.Percent() != 0 || TipSelectionCustom.Percent() != 0 {
		t.Fatalf("none/custom selections have no tier percent")
	}
}

func TestParseCustomizationScope(t *testing.T) {
	scope, err := ParseCustomizationScope("category")
	if err != nil {
		t.Fatalf("ParseCustomizationScope: %v", err)
	}
	if scope != CustomizationScopeCategory {
		t.Fatalf("unexpected scope %s", scope)
	}
	if _, err := ParseCustomizationScope("menu"); err == nil {
		t.Fatalf("expected error for unknown scope")
	}
}
