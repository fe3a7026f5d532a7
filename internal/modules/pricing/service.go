// README: Price engine: surge from demand, capped overrides, duration tiers, rate guard.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"torq/internal/modules/demand"
	"torq/internal/modules/overrides"
)

var (
	ErrUnknownVehicle  = errors.New("unknown vehicle type")
	ErrInvalidDuration = errors.New("duration must be a positive number of hours")
)

// Options names the engine tunables. Zero values take the documented
// defaults, so tests can set only what they exercise.
type Options struct {
	Rates             RateTable
	MinMultiplier     float64
	MaxMultiplier     float64
	DiscountTiers     []Tier
	LowConfidenceDays int

	// Now is the clock used by the warning policy. Production wiring leaves
	// it nil for time.Now.
	Now func() time.Time
}

// Engine composes the demand model and override detector into a guarded
// price. CalculatePrice is a pure function of its inputs plus configuration
// loaded at construction: no I/O, no shared mutable state, safe to call
// concurrently.
type Engine struct {
	model    *demand.Model
	detector *overrides.Detector

	rates             RateTable
	minMultiplier     float64
	maxMultiplier     float64
	tiers             []Tier
	lowConfidenceDays int
	now               func() time.Time
}

func NewEngine(model *demand.Model, detector *overrides.Detector, opts Options) *Engine {
	if opts.Rates == nil {
		opts.Rates = DefaultRates()
	}
	if opts.MinMultiplier == 0 {
		opts.MinMultiplier = 0.70
	}
	if opts.MaxMultiplier == 0 {
		opts.MaxMultiplier = 2.00
	}
	if opts.DiscountTiers == nil {
		opts.DiscountTiers = DefaultTiers()
	}
	if opts.LowConfidenceDays == 0 {
		opts.LowConfidenceDays = 90
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		model:             model,
		detector:          detector,
		rates:             opts.Rates,
		minMultiplier:     opts.MinMultiplier,
		maxMultiplier:     opts.MaxMultiplier,
		tiers:             opts.DiscountTiers,
		lowConfidenceDays: opts.LowConfidenceDays,
		now:               opts.Now,
	}
}

// Rates exposes the active vehicle rate table for the vehicles endpoint.
func (e *Engine) Rates() RateTable {
	return e.rates
}

// CalculatePrice runs the full pipeline for one booking request.
func (e *Engine) CalculatePrice(at time.Time, vehicle VehicleType, hours float64) (*Result, error) {
	rate, ok := e.rates[vehicle]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownVehicle, vehicle, VehicleTypes)
	}
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDuration, hours)
	}

	// 1. Demand estimate.
	dem := e.model.Estimate(at)

	// 2. Linear surge map: score 0 hits the min multiplier, score 1 the max.
	surge := e.minMultiplier + dem.Score*(e.maxMultiplier-e.minMultiplier)

	// 3. Contextual overrides, reusing the day type classified above.
	overrideFactor, detected, capped := e.detector.Detect(at, dem.DayType)

	// 4. Final multiplier stays inside the bounds no matter how the surge
	// and override product stacks.
	rawMultiplier := surge * overrideFactor
	finalMultiplier := clamp(rawMultiplier, e.minMultiplier, e.maxMultiplier)

	// 5. Duration discount, largest tier first.
	discount := e.durationDiscount(hours)

	// 6-7. Effective hourly rate, then absolute per-vehicle guard.
	effective := rate.Base * finalMultiplier * discount
	guarded := clamp(effective, rate.Floor, rate.Ceiling)
	total := guarded * hours

	warnings := e.buildWarnings(at, dem)
	explanation := e.buildExplanation(rate, hours, dem, surge, overrideFactor,
		detected, capped, finalMultiplier, discount, effective, guarded, total)

	return &Result{
		FinalPrice:          round2(total),
		HourlyRate:          rate.Base,
		EffectiveHourlyRate: round2(guarded),
		VehicleType:         vehicle,
		VehicleName:         rate.Name,
		BaseRate:            rate.Base,
		DurationHours:       hours,
		PickupAt:            at.Format("2006-01-02T15:04:05"),
		Demand:              dem,
		SurgeMultiplier:     round4(surge),
		OverrideFactor:      round4(overrideFactor),
		FinalMultiplier:     round4(finalMultiplier),
		DurationDiscount:    discount,
		OverridesDetected:   detected,
		OverrideWasCapped:   capped,
		Warnings:            warnings,
		Explanation:         explanation,
	}, nil
}

func (e *Engine) durationDiscount(hours float64) float64 {
	for _, t := range e.tiers {
		if hours >= t.MinHours {
			return t.Discount
		}
	}
	return 1.0
}

// buildWarnings applies the booking confidence policy. A past date gets the
// historical note instead of, not in addition to, the advance-booking one.
func (e *Engine) buildWarnings(at time.Time, dem demand.Result) []string {
	now := e.now()
	if at.Before(now) {
		return []string{fmt.Sprintf(
			"Pickup time %s is in the past. Price shown for historical reference only.",
			at.Format("2006-01-02 15:04"))}
	}

	daysAhead := int(dateOf(at).Sub(dateOf(now)).Hours() / 24)
	if daysAhead <= e.lowConfidenceDays {
		return nil
	}

	switch {
	case dem.IsHoliday:
		return []string{fmt.Sprintf(
			"Booking is %d days ahead but %s is calendar-certain. High confidence pricing.",
			daysAhead, dem.HolidayName)}
	case isWeekend(at):
		return []string{fmt.Sprintf(
			"Booking is %d days ahead (over %d days). Weekend demand is predictable but seasonal factors may vary. Medium confidence.",
			daysAhead, e.lowConfidenceDays)}
	default:
		return []string{fmt.Sprintf(
			"Booking is %d days ahead (over %d days). Demand prediction confidence is lower for distant weekdays: weather and local events are uncertain.",
			daysAhead, e.lowConfidenceDays)}
	}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
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

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
