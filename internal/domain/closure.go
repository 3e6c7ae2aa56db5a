package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Closure is an admin-declared override that fully or partially removes
// availability for one or more calendar days.
//
// Invariants (enforced at creation time by the closures service):
//   - StartDate <= EndDate (day granularity, time-of-day zeroed)
//   - multi-day ranges are always full-day
//   - a partial closure carries StartTime < EndTime, both aligned to
//     ClosureTimeStepMinutes
//   - closure date ranges never overlap each other
type Closure struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
	IsFullDay bool
	StartTime types.TimeString // set only when !IsFullDay
	EndTime   types.TimeString // set only when !IsFullDay
	Reason    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMultiDay reports whether the closure spans more than one calendar day
func (c *Closure) IsMultiDay() bool {
	return !sameDay(c.StartDate, c.EndDate)
}

// Covers reports whether the closure's date range includes the given day
func (c *Closure) Covers(day time.Time) bool {
	d := dayOf(day)
	return !d.Before(dayOf(c.StartDate)) && !d.After(dayOf(c.EndDate))
}

// ClosureKind discriminates the disposition of a day with respect to closures
type ClosureKind int

const (
	ClosureOpen ClosureKind = iota
	ClosurePartial
	ClosureFull
)

// ClosureDisposition is the resolved effect of closures on a single day.
// For a partial closure, [WindowStart, WindowEnd) is an absolute interval
// on that day which the slot generator must treat as occupied, exactly
// like an existing booking.
type ClosureDisposition struct {
	Kind        ClosureKind
	Reason      string
	WindowStart time.Time
	WindowEnd   time.Time
}

// IsOpen reports no closure effect
func (d ClosureDisposition) IsOpen() bool { return d.Kind == ClosureOpen }

// IsFullyClosed reports that no slots may be generated at all
func (d ClosureDisposition) IsFullyClosed() bool { return d.Kind == ClosureFull }

// IsPartiallyClosed reports that a sub-window of the day is suppressed
func (d ClosureDisposition) IsPartiallyClosed() bool { return d.Kind == ClosurePartial }

// ResolveClosures resolves the disposition of day against the closure
// records covering it. A full-day record wins outright. Otherwise the
// earliest-starting partial record whose single-day range equals the day
// yields a partial window built on day in SalonLocation. With no covering
// record the day is open.
//
// Overlapping closures are rejected at creation time; the earliest-window
// rule only makes the resolution deterministic should bad data exist.
func ResolveClosures(day time.Time, closures []*Closure) ClosureDisposition {
	var partial *Closure

	for _, c := range closures {
		if !c.Covers(day) {
			continue
		}

		if c.IsFullDay {
			return ClosureDisposition{
				Kind:   ClosureFull,
				Reason: closureReason(c),
			}
		}

		if c.IsMultiDay() || c.StartTime.IsZero() || c.EndTime.IsZero() {
			// Malformed record: partial closures are single-day with both
			// bounds set. Ignore rather than guess.
			continue
		}

		if partial == nil || c.StartTime.IsBefore(partial.StartTime) {
			partial = c
		}
	}

	if partial == nil {
		return ClosureDisposition{Kind: ClosureOpen}
	}

	windowStart, err := partial.StartTime.OnDate(day, SalonLocation)
	if err != nil {
		return ClosureDisposition{Kind: ClosureOpen}
	}
	windowEnd, err := partial.EndTime.OnDate(day, SalonLocation)
	if err != nil {
		return ClosureDisposition{Kind: ClosureOpen}
	}

	return ClosureDisposition{
		Kind:        ClosurePartial,
		Reason:      closureReason(partial),
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}
}

func closureReason(c *Closure) string {
	if c.Reason == "" {
		return DefaultClosureReason
	}
	return c.Reason
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
