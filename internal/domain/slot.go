package domain

import "time"

// Slot represents a bookable time interval owned by one sales manager.
// Slots are created and maintained by an external booking system and are
// read-only within this service.
type Slot struct {
	ID             int64
	SalesManagerID int64
	StartDate      time.Time
	EndDate        time.Time
	Booked         bool
}

// Overlaps returns true if the slot interval [StartDate, EndDate) actually
// overlaps the other slot's interval.
//
// Граничные случаи пересечением НЕ считаются:
// - слот 11:30-12:00 и слот 11:00-11:30 граничат, пересечения нет
// - слот 11:30-12:00 и слот 12:00-12:30 граничат, пересечения нет
// - слот 11:30-12:00 и слот 11:20-11:40 пересекаются (11:30-11:40)
func (s *Slot) Overlaps(other *Slot) bool {
	return s.StartDate.Before(other.EndDate) && s.EndDate.After(other.StartDate)
}

// IsOnDate returns true if the slot starts on the given calendar date.
// Сравниваются только компоненты даты, время начала не учитывается
func (s *Slot) IsOnDate(date time.Time) bool {
	y1, m1, d1 := s.StartDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
