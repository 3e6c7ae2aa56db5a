package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot generation constants
const (
	// SlotIntervalMinutes is the fixed cadence between candidate slot starts.
	// It is finer than most service durations, so slots slide rather than
	// tile: a 25-minute haircut may start at :05, :10, :15 and so on.
	SlotIntervalMinutes = 5

	// ClosureTimeStepMinutes is the required alignment of partial closure
	// window boundaries.
	ClosureTimeStepMinutes = 5
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxCustomerNameLength     = 100
	MaxPhoneNumberLength      = 20
	MaxClosureReasonLength    = 200
)

// DefaultClosureReason is used when an admin creates a closure without a reason.
const DefaultClosureReason = "Shop Closed"

// SalonLocation is the fixed civil timezone of the salon (UTC+05:30).
// Calendar dates are combined with "HH:MM" wall-clock strings in this
// location everywhere: slot generation and booking validation must share
// a single offset, otherwise a slot shown as free may be rejected on commit.
var SalonLocation = time.FixedZone("UTC+05:30", 5*3600+30*60)

// OccupyingStatuses lists the statuses that count toward timeline conflicts.
// Completed and canceled appointments free their interval.
var OccupyingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusBlocked,
}

// ValidStatuses lists every status an appointment may be set to.
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
	StatusCanceled,
	StatusBlocked,
}
