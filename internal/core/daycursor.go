package core

import "time"

// DayCursor tracks the calendar day currently shown in the browsing view.
// It steps back freely but never advances past today.
type DayCursor struct {
	current time.Time
	now     func() time.Time
}

// NewDayCursor returns a cursor positioned on the local today.
func NewDayCursor() *DayCursor {
	return NewDayCursorAt(time.Now)
}

// NewDayCursorAt injects the clock, for tests.
func NewDayCursorAt(now func() time.Time) *DayCursor {
	c := &DayCursor{now: now}
	c.current = startOfDay(now())
	return c
}

func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Previous moves back one calendar day.
func (c *DayCursor) Previous() {
	c.current = c.current.AddDate(0, 0, -1)
}

// Next moves forward one calendar day; on today it is a no-op.
func (c *DayCursor) Next() {
	if c.IsToday() {
		return
	}
	c.current = c.current.AddDate(0, 0, 1)
}

func (c *DayCursor) IsToday() bool {
	return DayKey(c.current) == DayKey(c.now())
}

// Key returns the day key of the current day.
func (c *DayCursor) Key() string {
	return DayKey(c.current)
}

// Label returns "Today" on today, otherwise a full date.
func (c *DayCursor) Label() string {
	if c.IsToday() {
		return "Today"
	}
	return c.current.Format("Monday, January 2, 2006")
}
