// README: Holiday calendar value type shared by demand scoring and override detection.
package calendar

import "time"

// Holiday is one calendar entry. Festival marks the entries that qualify for
// the higher festival override factor instead of the plain holiday factor.
type Holiday struct {
	Name     string
	Festival bool
}

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	return dateKey{t.Year(), t.Month(), t.Day()}
}

// Calendar maps calendar dates to holidays. Immutable after construction; safe
// for concurrent readers.
type Calendar struct {
	days map[dateKey]Holiday
}

// Entry pairs a date with its holiday, used to construct calendars from
// external sources. Later entries for the same date win.
type Entry struct {
	Date    time.Time
	Holiday Holiday
}

func New(entries []Entry) *Calendar {
	c := &Calendar{days: make(map[dateKey]Holiday, len(entries))}
	for _, e := range entries {
		c.days[keyOf(e.Date)] = e.Holiday
	}
	return c
}

// Lookup returns the holiday on the given date, ignoring the time of day.
func (c *Calendar) Lookup(t time.Time) (Holiday, bool) {
	h, ok := c.days[keyOf(t)]
	return h, ok
}

func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.days[keyOf(t)]
	return ok
}

func (c *Calendar) Len() int {
	return len(c.days)
}
