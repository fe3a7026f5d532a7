package demand

import (
	"testing"
	"time"

	"torq/internal/modules/calendar"
)

func defaultModel() *Model {
	return NewModel(Fallback(), calendar.Default(), DefaultWeights())
}

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

// TestClassifyDay pins the priority-ordered classification against the
// built-in calendar.
func TestClassifyDay(t *testing.T) {
	model := defaultModel()

	cases := []struct {
		date time.Time
		want DayType
	}{
		// Monday holiday (Republic Day 2026-01-26): Sat-Sun-Mon stretch.
		{at(2026, time.January, 24, 9), DayLongWeekend},
		{at(2026, time.January, 25, 9), DayLongWeekend},
		{at(2026, time.January, 26, 9), DayLongWeekend},
		// Friday holiday (Independence Day 2025-08-15): Fri-Sat-Sun stretch.
		{at(2025, time.August, 15, 9), DayLongWeekend},
		{at(2025, time.August, 16, 9), DayLongWeekend},
		{at(2025, time.August, 17, 9), DayLongWeekend},
		// Diwali Monday + Tuesday 2025: Sat through Tue, four free days.
		{at(2025, time.October, 18, 9), DayLongWeekend},
		{at(2025, time.October, 21, 9), DayLongWeekend},
		// Isolated Thursday holiday (Independence Day 2024-08-15).
		{at(2024, time.August, 15, 9), DayHoliday},
		// Friday after a Thursday holiday: one leave day bridges to the weekend.
		{at(2024, time.August, 16, 9), DayBridgeStrong},
		// Monday before a Tuesday holiday (Mahavir Jayanti 2026-03-31).
		{at(2026, time.March, 30, 9), DayBridgeStrong},
		// Isolated Tuesday holiday is a plain holiday, not a long weekend.
		{at(2026, time.March, 31, 9), DayHoliday},
		// Day before Christmas 2025 (a Wednesday).
		{at(2025, time.December, 24, 9), DayHolidayEve},
		// Plain weekend and Friday.
		{at(2025, time.February, 15, 9), DaySaturday},
		{at(2025, time.February, 16, 9), DaySunday},
		{at(2025, time.February, 14, 9), DayFriday},
		// Wednesday holiday (Muharram 2024-07-17): Monday and Thursday need
		// two leave days to connect holiday and weekend. The Tuesday before
		// it is claimed by the higher-priority holiday_eve rule.
		{at(2024, time.July, 15, 9), DayBridgeWeak},
		{at(2024, time.July, 16, 9), DayHolidayEve},
		{at(2024, time.July, 18, 9), DayBridgeWeak},
		// The Wednesday itself is a holiday.
		{at(2024, time.July, 17, 9), DayHoliday},
		// Nothing special.
		{at(2025, time.June, 10, 9), DayRegularWeekday},
	}
	for _, tc := range cases {
		if got := model.ClassifyDay(tc.date); got != tc.want {
			t.Errorf("ClassifyDay(%s) = %s, want %s",
				tc.date.Format("2006-01-02 Mon"), got, tc.want)
		}
	}
}

// TestClassificationIsTotal sweeps three years: every date must resolve to
// one of the nine labels.
func TestClassificationIsTotal(t *testing.T) {
	model := defaultModel()
	known := make(map[DayType]bool, len(DayTypes))
	for _, dt := range DayTypes {
		known[dt] = true
	}

	for d := at(2024, time.January, 1, 0); d.Year() <= 2026; d = d.AddDate(0, 0, 1) {
		if got := model.ClassifyDay(d); !known[got] {
			t.Fatalf("ClassifyDay(%s) produced unknown label %q", d.Format("2006-01-02"), got)
		}
	}
}

func TestScoreStaysInRange(t *testing.T) {
	model := defaultModel()
	for d := at(2024, time.January, 1, 0); d.Year() <= 2026; d = d.Add(31 * time.Hour) {
		r := model.Estimate(d)
		if r.Score < 0 || r.Score > 1 {
			t.Fatalf("Estimate(%s).Score = %v, out of [0, 1]", d, r.Score)
		}
	}
}

func TestBlendArithmetic(t *testing.T) {
	profile := &Profile{
		DayType: map[string]float64{"saturday": 0.59},
		Monthly: map[string]float64{"10": 1.00},
		Hourly:  map[string]float64{"9": 0.89},
	}
	model := NewModel(profile, calendar.New(nil), DefaultWeights())

	r := model.Estimate(at(2025, time.October, 18, 9))
	if r.DayType != DaySaturday {
		t.Fatalf("day type = %s, want saturday", r.DayType)
	}
	if r.Score != 0.788 {
		t.Errorf("score = %v, want 0.788", r.Score)
	}
	if r.Zone != ZoneSurge {
		t.Errorf("zone = %s, want Surge", r.Zone)
	}
}

func TestMissingKeysFallBackToNeutral(t *testing.T) {
	model := NewModel(&Profile{}, calendar.New(nil), DefaultWeights())
	r := model.Estimate(at(2025, time.June, 10, 9))
	if r.DayTypeScore != 0.5 || r.SeasonScore != 0.5 || r.TimeSlotScore != 0.5 {
		t.Errorf("missing keys should score 0.5, got %v / %v / %v",
			r.DayTypeScore, r.SeasonScore, r.TimeSlotScore)
	}
	if r.Score != 0.5 {
		t.Errorf("all-neutral blend = %v, want 0.5", r.Score)
	}
}

// TestWeekendOutscoresWeekday holds month and hour fixed so only the day-type
// signal differs.
func TestWeekendOutscoresWeekday(t *testing.T) {
	model := defaultModel()
	sat := model.Estimate(at(2025, time.February, 15, 9))
	sun := model.Estimate(at(2025, time.February, 16, 9))
	tue := model.Estimate(at(2025, time.February, 11, 9))

	if sat.Score <= tue.Score {
		t.Errorf("saturday (%v) should outscore tuesday (%v)", sat.Score, tue.Score)
	}
	if sun.Score <= tue.Score {
		t.Errorf("sunday (%v) should outscore tuesday (%v)", sun.Score, tue.Score)
	}
}

func TestHolidayInfo(t *testing.T) {
	model := defaultModel()

	r := model.Estimate(at(2025, time.October, 20, 9))
	if !r.IsHoliday || r.HolidayName != "Diwali" {
		t.Errorf("Diwali lookup: IsHoliday=%v HolidayName=%q", r.IsHoliday, r.HolidayName)
	}

	r = model.Estimate(at(2025, time.June, 10, 9))
	if r.IsHoliday || r.HolidayName != "" {
		t.Errorf("plain day: IsHoliday=%v HolidayName=%q", r.IsHoliday, r.HolidayName)
	}
}

func TestClassifyZone(t *testing.T) {
	cases := []struct {
		score float64
		want  Zone
	}{
		{0.00, ZoneDead},
		{0.1499, ZoneDead},
		{0.15, ZoneLow},
		{0.3499, ZoneLow},
		{0.35, ZoneNormal},
		{0.5499, ZoneNormal},
		{0.55, ZoneHigh},
		{0.7499, ZoneHigh},
		{0.75, ZoneSurge},
		{1.00, ZoneSurge},
	}
	for _, tc := range cases {
		if got := ClassifyZone(tc.score); got != tc.want {
			t.Errorf("ClassifyZone(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

// TestYearBoundaryRun: New Year 2026 falls on a Thursday, so there is no
// special seam handling to observe there, but a synthetic calendar spanning
// Dec 31 to Jan 2 must still chain into one run.
func TestYearBoundaryRun(t *testing.T) {
	cal := calendar.New([]calendar.Entry{
		{Date: at(2025, time.December, 31, 0), Holiday: calendar.Holiday{Name: "A"}},
		{Date: at(2026, time.January, 1, 0), Holiday: calendar.Holiday{Name: "B"}},
		{Date: at(2026, time.January, 2, 0), Holiday: calendar.Holiday{Name: "C"}},
	})
	model := NewModel(Fallback(), cal, DefaultWeights())
	for _, d := range []time.Time{
		at(2025, time.December, 31, 9),
		at(2026, time.January, 1, 9),
		at(2026, time.January, 2, 9),
	} {
		if got := model.ClassifyDay(d); got != DayLongWeekend {
			t.Errorf("ClassifyDay(%s) = %s, want long_weekend across the year seam",
				d.Format("2006-01-02"), got)
		}
	}
}
