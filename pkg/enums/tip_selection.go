package enums

import "fmt"

// TipSelection is the guest's tip choice at checkout.
type TipSelection string

const (
	TipSelectionNone     TipSelection = "none"
	TipSelectionFifteen  TipSelection = "15"
	TipSelectionEighteen TipSelection = "18"
	TipSelectionTwenty   TipSelection = "20"
	TipSelectionCustom   TipSelection = "custom"
)

var validTipSelections = []TipSelection{
	TipSelectionNone,
	TipSelectionFifteen,
	TipSelectionEighteen,
	TipSelectionTwenty,
	TipSelectionCustom,
}

// String implements fmt.Stringer.
func (t TipSelection) String() string {
	return string(t)
}

// IsValid reports whether the value is known.
func (t TipSelection) IsValid() bool {
	for _, candidate := range validTipSelections {
		if candidate == t {
			return true
		}
	}
	return false
}

// Percent returns the tier percentage for percentage selections, or 0.
func (t TipSelection) Percent() int {
	switch t {
	case TipSelectionFifteen:
		return 15
	case TipSelectionEighteen:
		return 18
	case TipSelectionTwenty:
		return 20
	}
	return 0
}

// ParseTipSelection converts raw input into a TipSelection.
func ParseTipSelection(value string) (TipSelection, error) {
	for _, candidate := range validTipSelections {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tip selection %q", value)
}
