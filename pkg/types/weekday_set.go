package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// WeekdaySet holds weekday indices (0 = Sunday) persisted as JSONB.
type WeekdaySet []int

// Contains reports whether the given weekday is in the set.
func (w WeekdaySet) Contains(day time.Weekday) bool {
	for _, candidate := range w {
		if candidate == int(day) {
			return true
		}
	}
	return false
}

// Validate rejects out-of-range or duplicate weekday indices.
func (w WeekdaySet) Validate() error {
	seen := map[int]struct{}{}
	for _, day := range w {
		if day < 0 || day > 6 {
			return fmt.Errorf("weekday index %d out of range", day)
		}
		if _, dup := seen[day]; dup {
			return fmt.Errorf("weekday index %d repeated", day)
		}
		seen[day] = struct{}{}
	}
	return nil
}

// Value serializes the set to JSON.
func (w WeekdaySet) Value() (driver.Value, error) {
	if w == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w)
}

// Scan decodes JSONB into the set.
func (w *WeekdaySet) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded WeekdaySet
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*w = decoded
	return nil
}
