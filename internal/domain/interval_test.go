package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, SalonLocation)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "identical intervals",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 0), bEnd: at(10, 30),
			expected: true,
		},
		{
			name:   "b starts inside a",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 15), bEnd: at(10, 45),
			expected: true,
		},
		{
			name:   "b ends inside a",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(9, 45), bEnd: at(10, 15),
			expected: true,
		},
		{
			name:   "b contains a",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(9, 0), bEnd: at(11, 0),
			expected: true,
		},
		{
			name:   "b ends exactly when a starts",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(9, 30), bEnd: at(10, 0),
			expected: false,
		},
		{
			name:   "b starts exactly when a ends",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 30), bEnd: at(11, 0),
			expected: false,
		},
		{
			name:   "disjoint intervals",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(12, 0), bEnd: at(12, 30),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Предикат симметричен
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
