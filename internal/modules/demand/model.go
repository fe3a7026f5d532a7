// README: Demand scoring types: day-type labels, intensity zones, estimation result.
package demand

// DayType is the strongest demand signal: one of 9 mutually exclusive
// calendar-day categories, resolved by a strict priority order.
type DayType string

const (
	DayLongWeekend    DayType = "long_weekend"
	DayHoliday        DayType = "holiday"
	DayBridgeStrong   DayType = "bridge_strong"
	DayHolidayEve     DayType = "holiday_eve"
	DaySaturday       DayType = "saturday"
	DaySunday         DayType = "sunday"
	DayFriday         DayType = "friday"
	DayBridgeWeak     DayType = "bridge_weak"
	DayRegularWeekday DayType = "regular_weekday"
)

// DayTypes lists every label in classification priority order. Profile
// validation requires a score for each.
var DayTypes = []DayType{
	DayLongWeekend,
	DayHoliday,
	DayBridgeStrong,
	DayHolidayEve,
	DaySaturday,
	DaySunday,
	DayFriday,
	DayBridgeWeak,
	DayRegularWeekday,
}

// Zone classifies a blended score into one of 5 demand intensity bands.
type Zone string

const (
	ZoneDead   Zone = "Dead"
	ZoneLow    Zone = "Low"
	ZoneNormal Zone = "Normal"
	ZoneHigh   Zone = "High"
	ZoneSurge  Zone = "Surge"
)

// ClassifyZone maps a demand score to its zone. Ranges are inclusive on the
// lower bound, exclusive on the upper, except Surge which includes 1.0.
func ClassifyZone(score float64) Zone {
	switch {
	case score < 0.15:
		return ZoneDead
	case score < 0.35:
		return ZoneLow
	case score < 0.55:
		return ZoneNormal
	case score < 0.75:
		return ZoneHigh
	default:
		return ZoneSurge
	}
}

// Result is the full demand estimate for one pickup time. Immutable once
// constructed.
type Result struct {
	Score         float64 `json:"score"`
	Zone          Zone    `json:"zone"`
	DayType       DayType `json:"day_type"`
	DayTypeScore  float64 `json:"day_type_score"`
	SeasonScore   float64 `json:"season_score"`
	TimeSlotScore float64 `json:"time_slot_score"`
	Hour          int     `json:"hour"`
	Month         int     `json:"month"`
	Weekday       string  `json:"weekday"`
	IsHoliday     bool    `json:"is_holiday"`
	HolidayName   string  `json:"holiday_name,omitempty"`
}
