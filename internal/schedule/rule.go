package schedule

import (
	"time"

	"github.com/alessaops/storefront-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// TimeRule is a recurring weekly window attached to a menu item. While the
// rule is active the item may carry an override price and a display label;
// an enabled rule also hides the item entirely outside its window.
type TimeRule struct {
	Enabled        bool
	ActiveWeekdays types.WeekdaySet
	WindowStart    *types.TimeOfDay
	WindowEnd      *types.TimeOfDay
	OverridePrice  *decimal.Decimal
	Label          *string
}

// IsActive reports whether the rule is in effect at the supplied instant.
// The caller provides now explicitly; the evaluator never reads a clock, so
// identical inputs always produce identical output.
//
// A rule with only one of start/end set is treated the same as a rule with
// no window at all: active for the entire matching weekday. That fallback is
// deliberately permissive so a half-configured window never hides an item.
func IsActive(rule TimeRule, now time.Time) bool {
	if !rule.Enabled {
		return false
	}
	if !rule.ActiveWeekdays.Contains(now.Weekday()) {
		return false
	}
	if rule.WindowStart == nil || rule.WindowEnd == nil {
		return true
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	start := rule.WindowStart.Minutes()
	end := rule.WindowEnd.Minutes()

	if start > end {
		// Overnight window, e.g. 22:00-02:00. This must be its own branch:
		// negating the normal-window test would wrongly admit the gap
		// between end and start.
		return nowMinutes >= start || nowMinutes <= end
	}
	return nowMinutes >= start && nowMinutes <= end
}
