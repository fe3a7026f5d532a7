// README: Override detector: ordered independent rules folded into one capped factor.
package overrides

import (
	"fmt"
	"time"

	"torq/internal/modules/calendar"
	"torq/internal/modules/demand"
)

// ruleContext is what each rule sees: the request time, its date at midnight,
// and the day type already classified by the demand model (single source of
// truth for day classification).
type ruleContext struct {
	at      time.Time
	date    time.Time
	dayType demand.DayType
}

// A rule independently inspects the context and either fires with one or more
// overrides or stays silent. Rules never see each other's output.
type rule func(ctx ruleContext) []Override

// Detector evaluates a fixed ordered rule sequence against a pickup datetime.
// All configuration is read-only after construction; safe for concurrent use.
type Detector struct {
	cal       *calendar.Calendar
	profile   *demand.Profile
	factors   Factors
	maxFactor float64
	rules     []rule
}

func NewDetector(profile *demand.Profile, cal *calendar.Calendar, factors Factors, maxFactor float64) *Detector {
	if profile == nil {
		profile = demand.Fallback()
	}
	if cal == nil {
		cal = calendar.Default()
	}
	if factors == (Factors{}) {
		factors = DefaultFactors()
	}
	if maxFactor <= 0 {
		maxFactor = 2.00
	}
	d := &Detector{cal: cal, profile: profile, factors: factors, maxFactor: maxFactor}
	d.rules = []rule{
		d.longWeekendRule,
		d.holidayRule,
		d.holidayEveRule,
		d.fridayEveningRule,
		d.weatherRule,
	}
	return d
}

// Detect returns the combined multiplicative factor, the overrides that fired
// in rule order, and whether the raw product was capped. The empty product
// is 1.0.
func (d *Detector) Detect(at time.Time, dayType demand.DayType) (float64, []Override, bool) {
	ctx := ruleContext{
		at:      at,
		date:    time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location()),
		dayType: dayType,
	}

	var detected []Override
	raw := 1.0
	for _, r := range d.rules {
		for _, o := range r(ctx) {
			detected = append(detected, o)
			raw *= o.Factor
		}
	}

	combined := clamp(raw, 0, d.maxFactor)
	return combined, detected, raw > d.maxFactor
}

func (d *Detector) longWeekendRule(ctx ruleContext) []Override {
	if ctx.dayType != demand.DayLongWeekend {
		return nil
	}
	return []Override{{
		Name:       "Long Weekend",
		Factor:     d.factors.LongWeekend,
		Reason:     "part of an extended weekend stretch detected from the calendar",
		Confidence: ConfidenceHigh,
		Effect:     EffectSurge,
	}}
}

// holidayRule fires the festival or the plain holiday factor, never both.
func (d *Detector) holidayRule(ctx ruleContext) []Override {
	h, ok := d.cal.Lookup(ctx.date)
	if !ok {
		return nil
	}
	if h.Festival {
		return []Override{{
			Name:       "Festival: " + h.Name,
			Factor:     d.factors.Festival,
			Reason:     fmt.Sprintf("%s is a major festival that drives high rental demand", h.Name),
			Confidence: ConfidenceHigh,
			Effect:     EffectSurge,
		}}
	}
	return []Override{{
		Name:       "Holiday: " + h.Name,
		Factor:     d.factors.Holiday,
		Reason:     fmt.Sprintf("%s is a public holiday that increases leisure rentals", h.Name),
		Confidence: ConfidenceHigh,
		Effect:     EffectSurge,
	}}
}

func (d *Detector) holidayEveRule(ctx ruleContext) []Override {
	next, ok := d.cal.Lookup(ctx.date.AddDate(0, 0, 1))
	if !ok {
		return nil
	}
	return []Override{{
		Name:       "Eve of " + next.Name,
		Factor:     d.factors.HolidayEve,
		Reason:     fmt.Sprintf("day before %s brings early pickup demand", next.Name),
		Confidence: ConfidenceMedium,
		Effect:     EffectSurge,
	}}
}

func (d *Detector) fridayEveningRule(ctx ruleContext) []Override {
	if ctx.at.Weekday() != time.Friday || ctx.at.Hour() < fridayEveningHour {
		return nil
	}
	return []Override{{
		Name:       "Friday Evening Pickup",
		Factor:     d.factors.FridayEvening,
		Reason:     "Friday evening pickups for weekend trips run above baseline",
		Confidence: ConfidenceMedium,
		Effect:     EffectSurge,
	}}
}

// weatherRule reads the month's historical condition probabilities. Heavy
// rain and rain are mutually exclusive; heat stacks with either.
func (d *Detector) weatherRule(ctx ruleContext) []Override {
	probs := d.profile.WeatherProbs(ctx.at.Month())
	if len(probs) == 0 {
		return nil
	}

	var out []Override
	heavyRain := probs["heavy_rain"]
	rain := probs["rain"] + heavyRain
	month := int(ctx.at.Month())

	if heavyRain > heavyRainThreshold {
		out = append(out, Override{
			Name:       "Heavy Rain Likely",
			Factor:     d.factors.HeavyRainLikely,
			Reason:     fmt.Sprintf("historical data: %.0f%% of bookings in month %d had heavy rain", heavyRain*100, month),
			Confidence: ConfidenceHigh,
			Effect:     EffectDiscount,
		})
	} else if rain > rainThreshold {
		out = append(out, Override{
			Name:       "Rain Likely",
			Factor:     d.factors.RainLikely,
			Reason:     fmt.Sprintf("historical data: %.0f%% of bookings in month %d had rain", rain*100, month),
			Confidence: ConfidenceMedium,
			Effect:     EffectDiscount,
		})
	}

	if hot := probs["hot"]; hot > heatThreshold {
		out = append(out, Override{
			Name:       "Heatwave Likely",
			Factor:     d.factors.HeatwaveLikely,
			Reason:     fmt.Sprintf("historical data: %.0f%% of bookings in month %d had heatwave conditions", hot*100, month),
			Confidence: ConfidenceLow,
			Effect:     EffectDiscount,
		})
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
