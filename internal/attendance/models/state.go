package models

import "time"

// Calendar fixes the timezone in which "today" is computed. Both the stored
// timestamp and the evaluation instant are converted to Location before their
// civil dates are compared. A nil Location means the process-local zone.
type Calendar struct {
	Location *time.Location
}

// NewCalendar returns a calendar anchored to loc.
func NewCalendar(loc *time.Location) Calendar {
	return Calendar{Location: loc}
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// SameDay reports whether a and b fall on the same civil date in the calendar.
func (c Calendar) SameDay(a, b time.Time) bool {
	loc := c.location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's civil date in the calendar.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	loc := c.location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AttendanceState tracks the last successful check-in and check-out.
type AttendanceState struct {
	LastCheckIn  *time.Time
	LastCheckOut *time.Time
}

// HasCheckedInToday is true iff LastCheckIn is set and falls on now's day.
func (s *AttendanceState) HasCheckedInToday(now time.Time, cal Calendar) bool {
	return s.LastCheckIn != nil && cal.SameDay(*s.LastCheckIn, now)
}

// HasCheckedOutToday is true iff LastCheckOut is set and falls on now's day.
func (s *AttendanceState) HasCheckedOutToday(now time.Time, cal Calendar) bool {
	return s.LastCheckOut != nil && cal.SameDay(*s.LastCheckOut, now)
}

// RecordCheckIn overwrites LastCheckIn. Callers evaluate the day guard first.
func (s *AttendanceState) RecordCheckIn(now time.Time) {
	t := now
	s.LastCheckIn = &t
}

// RecordCheckOut overwrites LastCheckOut. Callers evaluate the day guard first.
func (s *AttendanceState) RecordCheckOut(now time.Time) {
	t := now
	s.LastCheckOut = &t
}

// Recorded is the day guard: it reports whether dir already holds a timestamp
// on now's day or a later one. A later day blocks the commit so the stored
// timestamp never moves backward.
func (s *AttendanceState) Recorded(dir Direction, now time.Time, cal Calendar) bool {
	last := s.LastCheckIn
	if dir == DirectionCheckOut {
		last = s.LastCheckOut
	}
	return last != nil && !last.Before(cal.StartOfDay(now))
}

// Record dispatches the mutator by direction.
func (s *AttendanceState) Record(dir Direction, now time.Time) {
	if dir == DirectionCheckOut {
		s.RecordCheckOut(now)
		return
	}
	s.RecordCheckIn(now)
}
