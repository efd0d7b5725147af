package schedule

import (
	"testing"
	"time"

	"github.com/alessaops/storefront-backend/pkg/types"
	"github.com/shopspring/decimal"
)

func timeOfDay(t *testing.T, value string) *types.TimeOfDay {
	t.Helper()
	parsed, err := types.ParseTimeOfDay(value)
	if err != nil {
		t.Fatalf("parse time of day %q: %v", value, err)
	}
	return &parsed
}

// 2025-01-03 is a Friday.
func fridayAt(hour, minute int) time.Time {
	return time.Date(2025, time.January, 3, hour, minute, 0, 0, time.UTC)
}

func saturdayAt(hour, minute int) time.Time {
	return time.Date(2025, time.January, 4, hour, minute, 0, 0, time.UTC)
}

func TestIsActive_DisabledRuleIsInert(t *testing.T) {
	override := decimal.NewFromFloat(1.99)
	rule := TimeRule{
		Enabled:        false,
		ActiveWeekdays: types.WeekdaySet{0, 1, 2, 3, 4, 5, 6},
		OverridePrice:  &override,
	}
	for hour := 0; hour < 24; hour++ {
		if IsActive(rule, fridayAt(hour, 30)) {
			t.Fatalf("disabled rule reported active at hour %d", hour)
		}
	}
}

func TestIsActive_WeekdayGate(t *testing.T) {
	rule := TimeRule{
		Enabled:        true,
		ActiveWeekdays: types.WeekdaySet{int(time.Tuesday)},
	}
	tuesday := time.Date(2025, time.January, 7, 12, 0, 0, 0, time.UTC)
	if !IsActive(rule, tuesday) {
		t.Fatal("expected rule active on Tuesday")
	}
	if IsActive(rule, fridayAt(12, 0)) {
		t.Fatal("expected rule inactive on Friday")
	}
}

func TestIsActive_NormalWindowInclusive(t *testing.T) {
	rule := TimeRule{
		Enabled:        true,
		ActiveWeekdays: types.WeekdaySet{int(time.Friday)},
		WindowStart:    timeOfDay(t, "11:00"),
		WindowEnd:      timeOfDay(t, "14:00"),
	}

	cases := []struct {
		now  time.Time
		want bool
	}{
		{fridayAt(10, 59), false},
		{fridayAt(11, 0), true},
		{fridayAt(12, 30), true},
		{fridayAt(14, 0), true},
		{fridayAt(14, 1), false},
	}
	for _, tc := range cases {
		if got := IsActive(rule, tc.now); got != tc.want {
			t.Fatalf("at %s: expected %v, got %v", tc.now.Format("15:04"), tc.want, got)
		}
	}
}

func TestIsActive_OvernightWindow(t *testing.T) {
	rule := TimeRule{
		Enabled:        true,
		ActiveWeekdays: types.WeekdaySet{int(time.Friday), int(time.Saturday)},
		WindowStart:    timeOfDay(t, "22:00"),
		WindowEnd:      timeOfDay(t, "02:00"),
	}

	cases := []struct {
		now  time.Time
		want bool
	}{
		{fridayAt(23, 30), true},
		{saturdayAt(1, 0), true},
		{fridayAt(20, 0), false},
		{saturdayAt(3, 0), false},
		{fridayAt(22, 0), true},
		{saturdayAt(2, 0), true},
	}
	for _, tc := range cases {
		if got := IsActive(rule, tc.now); got != tc.want {
			t.Fatalf("at %s %s: expected %v, got %v", tc.now.Weekday(), tc.now.Format("15:04"), tc.want, got)
		}
	}
}

func TestIsActive_SingleSidedWindowIsAllDay(t *testing.T) {
	rule := TimeRule{
		Enabled:        true,
		ActiveWeekdays: types.WeekdaySet{int(time.Friday)},
		WindowStart:    timeOfDay(t, "17:00"),
	}
	if !IsActive(rule, fridayAt(9, 0)) {
		t.Fatal("expected half-configured window to fall back to all day")
	}
}

func TestIsActive_NoWindowIsAllDay(t *testing.T) {
	rule := TimeRule{
		Enabled:        true,
		ActiveWeekdays: types.WeekdaySet{int(time.Friday)},
	}
	if !IsActive(rule, fridayAt(0, 0)) || !IsActive(rule, fridayAt(23, 59)) {
		t.Fatal("expected windowless rule active for the entire weekday")
	}
}

func TestIsActive_Deterministic(t *testing.T) {
	rule := TimeRule{
		Enabled:        true,
		ActiveWeekdays: types.WeekdaySet{int(time.Friday)},
		WindowStart:    timeOfDay(t, "22:00"),
		WindowEnd:      timeOfDay(t, "02:00"),
	}
	now := fridayAt(23, 15)
	first := IsActive(rule, now)
	for i := 0; i < 100; i++ {
		if IsActive(rule, now) != first {
			t.Fatal("IsActive must be pure in (rule, now)")
		}
	}
}
