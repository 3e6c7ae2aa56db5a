package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusBlocked   AppointmentStatus = "blocked"
)

// Appointment represents a booked (or admin-blocked) interval on the salon timeline
type Appointment struct {
	ID           int64
	CustomerName string
	PhoneNumber  string
	Date         time.Time // calendar day, time-of-day zeroed
	ServiceID    int64
	StartTime    time.Time
	EndTime      time.Time // frozen at creation: StartTime + duration-at-creation-time
	Status       AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the appointment counts toward timeline conflicts.
// Only scheduled and blocked appointments occupy their interval.
func (a *Appointment) IsOccupying() bool {
	return a.Status == StatusScheduled || a.Status == StatusBlocked
}

// IsBlocked returns true for synthetic admin-created appointments that
// reserve an interval without a real customer.
func (a *Appointment) IsBlocked() bool {
	return a.Status == StatusBlocked
}

// IsValidStatus reports whether s is one of the four valid statuses
func IsValidStatus(s AppointmentStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
