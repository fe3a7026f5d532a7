// README: Built-in Indian public holiday calendar for 2024-2026.
package calendar

import (
	"strings"
	"time"
)

// festivalKeywords marks which holidays count as major festivals for pricing.
var festivalKeywords = []string{
	"diwali", "holi", "dussehra", "christmas", "pongal",
	"ganesh", "onam", "eid", "guru nanak",
}

func isFestivalName(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range festivalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

type rawHoliday struct {
	year  int
	month time.Month
	day   int
	name  string
}

var indianHolidays = []rawHoliday{
	// 2024
	{2024, time.January, 26, "Republic Day"},
	{2024, time.March, 25, "Holi"},
	{2024, time.March, 29, "Good Friday"},
	{2024, time.April, 11, "Eid ul-Fitr"},
	{2024, time.April, 14, "Ambedkar Jayanti"},
	{2024, time.April, 17, "Ram Navami"},
	{2024, time.April, 21, "Mahavir Jayanti"},
	{2024, time.May, 23, "Buddha Purnima"},
	{2024, time.June, 17, "Eid ul-Adha"},
	{2024, time.July, 17, "Muharram"},
	{2024, time.August, 15, "Independence Day"},
	{2024, time.August, 19, "Raksha Bandhan"},
	{2024, time.August, 26, "Janmashtami"},
	{2024, time.September, 7, "Milad un-Nabi"},
	{2024, time.October, 2, "Gandhi Jayanti"},
	{2024, time.October, 12, "Dussehra"},
	{2024, time.October, 31, "Halloween / Diwali Eve"},
	{2024, time.November, 1, "Diwali"},
	{2024, time.November, 2, "Diwali (Day 2)"},
	{2024, time.November, 15, "Guru Nanak Jayanti"},
	{2024, time.December, 25, "Christmas"},

	// 2025
	{2025, time.January, 1, "New Year"},
	{2025, time.January, 14, "Pongal / Makar Sankranti"},
	{2025, time.January, 26, "Republic Day"},
	{2025, time.March, 14, "Holi"},
	{2025, time.March, 30, "Eid ul-Fitr"},
	{2025, time.April, 6, "Ram Navami"},
	{2025, time.April, 10, "Mahavir Jayanti"},
	{2025, time.April, 14, "Ambedkar Jayanti"},
	{2025, time.April, 18, "Good Friday"},
	{2025, time.May, 12, "Buddha Purnima"},
	{2025, time.June, 7, "Eid ul-Adha"},
	{2025, time.July, 6, "Muharram"},
	{2025, time.August, 9, "Raksha Bandhan"},
	{2025, time.August, 15, "Independence Day / Janmashtami"},
	{2025, time.August, 27, "Milad un-Nabi"},
	{2025, time.October, 2, "Dussehra"},
	{2025, time.October, 20, "Diwali"},
	{2025, time.October, 21, "Diwali (Day 2)"},
	{2025, time.November, 5, "Guru Nanak Jayanti"},
	{2025, time.December, 25, "Christmas"},

	// 2026
	{2026, time.January, 1, "New Year"},
	{2026, time.January, 14, "Pongal / Makar Sankranti"},
	{2026, time.January, 26, "Republic Day"},
	{2026, time.March, 4, "Holi"},
	{2026, time.March, 20, "Eid ul-Fitr"},
	{2026, time.March, 26, "Ram Navami"},
	{2026, time.March, 31, "Mahavir Jayanti"},
	{2026, time.April, 3, "Good Friday"},
	{2026, time.April, 14, "Ambedkar Jayanti"},
	{2026, time.May, 1, "Buddha Purnima"},
	{2026, time.May, 27, "Eid ul-Adha"},
	{2026, time.June, 26, "Muharram"},
	{2026, time.July, 29, "Raksha Bandhan"},
	{2026, time.August, 14, "Janmashtami"},
	{2026, time.August, 15, "Independence Day"},
	{2026, time.August, 17, "Milad un-Nabi"},
	{2026, time.September, 21, "Dussehra"},
	{2026, time.October, 2, "Gandhi Jayanti"},
	{2026, time.October, 9, "Diwali"},
	{2026, time.October, 10, "Diwali (Day 2)"},
	{2026, time.October, 25, "Guru Nanak Jayanti"},
	{2026, time.December, 25, "Christmas"},
}

// Default returns the built-in 2024-2026 Indian holiday calendar with festival
// flags derived from the holiday name.
func Default() *Calendar {
	entries := make([]Entry, 0, len(indianHolidays))
	for _, h := range indianHolidays {
		entries = append(entries, Entry{
			Date:    time.Date(h.year, h.month, h.day, 0, 0, 0, 0, time.Local),
			Holiday: Holiday{Name: h.name, Festival: isFestivalName(h.name)},
		})
	}
	return New(entries)
}
