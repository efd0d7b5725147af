package enums

import "fmt"

// CustomizationScope is the precedence level a customization profile
// applies at. Narrower scopes win when profiles are merged.
type CustomizationScope string

const (
	CustomizationScopeItem     CustomizationScope = "item"
	CustomizationScopeCategory CustomizationScope = "category"
	CustomizationScopeSection  CustomizationScope = "section"
	CustomizationScopeGlobal   CustomizationScope = "global"
)

var validCustomizationScopes = []CustomizationScope{
	CustomizationScopeItem,
	CustomizationScopeCategory,
	CustomizationScopeSection,
	CustomizationScopeGlobal,
}

// String implements fmt.Stringer.
func (c CustomizationScope) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CustomizationScope) IsValid() bool {
	for _, candidate := range validCustomizationScopes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCustomizationScope converts raw input into a CustomizationScope.
func ParseCustomizationScope(value string) (CustomizationScope, error) {
	for _, candidate := range validCustomizationScopes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customization scope %q", value)
}
