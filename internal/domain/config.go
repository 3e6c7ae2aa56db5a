package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ShiftWindow is one of the two fixed daily operating intervals
type ShiftWindow struct {
	Opens  types.TimeString
	Closes types.TimeString
}

// IsValid reports whether the window has both bounds and opens strictly
// before it closes
func (w ShiftWindow) IsValid() bool {
	if w.Opens.IsZero() || w.Closes.IsZero() {
		return false
	}
	if w.Opens.Validate() != nil || w.Closes.Validate() != nil {
		return false
	}
	return w.Opens.IsBefore(w.Closes)
}

// SalonConfig is the singleton operating configuration: two independent
// shift windows (morning precedes evening) and a list of weekly days off.
// The windows are assumed not to overlap; the generator treats them
// independently and unions the results.
type SalonConfig struct {
	ID      int64
	Morning ShiftWindow
	Evening ShiftWindow
	DaysOff []string // lowercase weekday names, e.g. "monday"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Windows returns the shift windows in chronological order
func (c *SalonConfig) Windows() []ShiftWindow {
	return []ShiftWindow{c.Morning, c.Evening}
}

// IsDayOff reports whether the given weekday is a configured day off
func (c *SalonConfig) IsDayOff(weekday time.Weekday) bool {
	name := strings.ToLower(weekday.String())
	for _, off := range c.DaysOff {
		if strings.ToLower(off) == name {
			return true
		}
	}
	return false
}
