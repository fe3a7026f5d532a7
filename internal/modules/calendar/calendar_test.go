package calendar

import (
	"testing"
	"time"
)

func TestDefaultLookup(t *testing.T) {
	cal := Default()

	cases := []struct {
		date     time.Time
		name     string
		festival bool
	}{
		{time.Date(2025, 10, 20, 0, 0, 0, 0, time.Local), "Diwali", true},
		{time.Date(2025, 1, 26, 0, 0, 0, 0, time.Local), "Republic Day", false},
		{time.Date(2024, 12, 25, 0, 0, 0, 0, time.Local), "Christmas", true},
		{time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local), "Independence Day", false},
		{time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), "Holi", true},
	}
	for _, tc := range cases {
		h, ok := cal.Lookup(tc.date)
		if !ok {
			t.Errorf("Lookup(%s): not found", tc.date.Format("2006-01-02"))
			continue
		}
		if h.Name != tc.name {
			t.Errorf("Lookup(%s).Name = %q, want %q", tc.date.Format("2006-01-02"), h.Name, tc.name)
		}
		if h.Festival != tc.festival {
			t.Errorf("Lookup(%s).Festival = %v, want %v", tc.date.Format("2006-01-02"), h.Festival, tc.festival)
		}
	}
}

func TestLookupIgnoresTimeOfDay(t *testing.T) {
	cal := Default()
	if !cal.IsHoliday(time.Date(2025, 10, 20, 18, 45, 12, 0, time.Local)) {
		t.Error("evening timestamp on a holiday should still match")
	}
}

func TestNonHoliday(t *testing.T) {
	cal := Default()
	if cal.IsHoliday(time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)) {
		t.Error("2025-06-10 should not be a holiday")
	}
}

func TestLaterEntryWins(t *testing.T) {
	d := time.Date(2025, 5, 5, 0, 0, 0, 0, time.Local)
	cal := New([]Entry{
		{Date: d, Holiday: Holiday{Name: "First"}},
		{Date: d, Holiday: Holiday{Name: "Second"}},
	})
	h, _ := cal.Lookup(d)
	if h.Name != "Second" {
		t.Errorf("duplicate date should keep the later entry, got %q", h.Name)
	}
}
