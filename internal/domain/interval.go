package domain

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. An appointment ending exactly when another
// starts does not overlap, so back-to-back bookings are allowed.
//
// This is the single overlap primitive used by both slot generation and
// booking-time validation. Keeping one definition avoids divergence between
// what is shown as free and what the server accepts.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return bStart.Before(aEnd) && bEnd.After(aStart)
}
