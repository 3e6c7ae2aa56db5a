package domain

import "time"

// Service represents a bookable salon service.
// Duration changes never retroactively alter already-created appointments:
// an appointment freezes its EndTime at creation.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
