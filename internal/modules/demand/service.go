// README: Demand model: day classification and weighted blend scoring.
package demand

import (
	"math"
	"time"

	"torq/internal/modules/calendar"
)

// Weights blends the three demand signals. They must sum to 1.0; with table
// values in [0, 1] this keeps the blended score in [0, 1] without re-clamping.
type Weights struct {
	DayType  float64
	Season   float64
	TimeSlot float64
}

func DefaultWeights() Weights {
	return Weights{DayType: 0.45, Season: 0.30, TimeSlot: 0.25}
}

// Model scores any pickup datetime against the loaded profile tables and
// holiday calendar. Stateless per call; safe for concurrent use.
type Model struct {
	profile *Profile
	cal     *calendar.Calendar
	weights Weights
}

func NewModel(profile *Profile, cal *calendar.Calendar, w Weights) *Model {
	if profile == nil {
		profile = Fallback()
	}
	if cal == nil {
		cal = calendar.Default()
	}
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	return &Model{profile: profile, cal: cal, weights: w}
}

// Profile exposes the loaded tables so the override detector can share the
// same weather probabilities.
func (m *Model) Profile() *Profile {
	return m.profile
}

// Estimate always returns a result; any calendar date is accepted.
func (m *Model) Estimate(at time.Time) Result {
	dayType := m.ClassifyDay(at)

	dayTypeScore := m.profile.DayTypeScore(dayType)
	seasonScore := m.profile.MonthScore(at.Month())
	timeSlotScore := m.profile.HourScore(at.Hour())

	score := m.weights.DayType*dayTypeScore +
		m.weights.Season*seasonScore +
		m.weights.TimeSlot*timeSlotScore

	holiday, isHoliday := m.cal.Lookup(at)

	return Result{
		Score:         round4(score),
		Zone:          ClassifyZone(score),
		DayType:       dayType,
		DayTypeScore:  round4(dayTypeScore),
		SeasonScore:   round4(seasonScore),
		TimeSlotScore: round4(timeSlotScore),
		Hour:          at.Hour(),
		Month:         int(at.Month()),
		Weekday:       at.Weekday().String(),
		IsHoliday:     isHoliday,
		HolidayName:   holiday.Name,
	}
}

// ClassifyDay resolves a date to exactly one day-type label. The checks run
// in strict priority order; first match wins.
func (m *Model) ClassifyDay(at time.Time) DayType {
	d := midnight(at)

	switch {
	case m.isLongWeekendDay(d):
		return DayLongWeekend
	case m.cal.IsHoliday(d):
		return DayHoliday
	case m.isStrongBridge(d):
		return DayBridgeStrong
	case m.cal.IsHoliday(d.AddDate(0, 0, 1)):
		return DayHolidayEve
	}

	switch d.Weekday() {
	case time.Saturday:
		return DaySaturday
	case time.Sunday:
		return DaySunday
	case time.Friday:
		return DayFriday
	}

	if m.isWeakBridge(d) {
		return DayBridgeWeak
	}
	return DayRegularWeekday
}

// isFreeDay: a day nobody has to work, either weekend or calendar holiday.
func (m *Model) isFreeDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	return m.cal.IsHoliday(d)
}

// isLongWeekendDay checks whether d sits inside a contiguous run of 3 or more
// free days. The run extends outward day by day in both directions; dates are
// treated as a continuous sequence with no month or year special-casing.
func (m *Model) isLongWeekendDay(d time.Time) bool {
	if !m.isFreeDay(d) {
		return false
	}
	run := 1
	for back := d.AddDate(0, 0, -1); m.isFreeDay(back); back = back.AddDate(0, 0, -1) {
		run++
		if run >= 3 {
			return true
		}
	}
	for fwd := d.AddDate(0, 0, 1); m.isFreeDay(fwd); fwd = fwd.AddDate(0, 0, 1) {
		run++
		if run >= 3 {
			return true
		}
	}
	return false
}

// isStrongBridge: a working day whose one neighbour is a holiday and whose
// other neighbour is a weekend day, so a single leave day joins them.
// Covers Monday before a Tuesday holiday and Friday after a Thursday holiday.
func (m *Model) isStrongBridge(d time.Time) bool {
	prev, next := d.AddDate(0, 0, -1), d.AddDate(0, 0, 1)
	if m.cal.IsHoliday(next) && isWeekendDay(prev) {
		return true
	}
	if m.cal.IsHoliday(prev) && isWeekendDay(next) {
		return true
	}
	return false
}

// isWeakBridge: a working day within two days of a mid-week (Wednesday)
// holiday, so two leave days are needed to connect it to a weekend.
func (m *Model) isWeakBridge(d time.Time) bool {
	for _, offset := range []int{-2, -1, 1, 2} {
		check := d.AddDate(0, 0, offset)
		if m.cal.IsHoliday(check) && check.Weekday() == time.Wednesday {
			return true
		}
	}
	return false
}

func isWeekendDay(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
