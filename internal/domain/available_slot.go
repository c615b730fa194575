package domain

import "time"

// AvailableSlot represents an aggregated availability result: a slot start
// time and the number of distinct sales managers free at that time.
// Derived per request, never persisted.
type AvailableSlot struct {
	StartDate      time.Time
	AvailableCount int
}

// HasCapacity returns true if at least one sales manager is free at this
// start time
func (s *AvailableSlot) HasCapacity() bool {
	return s.AvailableCount > 0
}
