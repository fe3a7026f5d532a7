// README: Step-by-step human-readable trace of one price calculation.
package pricing

import (
	"fmt"
	"strings"
	"time"

	"torq/internal/modules/demand"
	"torq/internal/modules/overrides"
)

// buildExplanation emits one ordered entry per pipeline step. The text is for
// transparency only; nothing downstream computes from it.
func (e *Engine) buildExplanation(
	rate Rate,
	hours float64,
	dem demand.Result,
	surge, overrideFactor float64,
	detected []overrides.Override,
	capped bool,
	finalMultiplier, discount, effective, guarded, total float64,
) []string {
	steps := []string{
		fmt.Sprintf("Vehicle: %s, base rate Rs %.2f/hr", rate.Name, rate.Base),
		fmt.Sprintf("Day type: %s (%s), score %.2f", dayTypeLabel(dem.DayType), dem.Weekday, dem.DayTypeScore),
		fmt.Sprintf("Season (%s): score %.2f", time.Month(dem.Month).String()[:3], dem.SeasonScore),
		fmt.Sprintf("Time slot (%02d:00): score %.2f", dem.Hour, dem.TimeSlotScore),
	}

	if dem.IsHoliday && dem.HolidayName != "" {
		steps = append(steps, "Holiday: "+dem.HolidayName)
	}

	steps = append(steps,
		fmt.Sprintf("Blended demand score %.2f, %s zone", dem.Score, dem.Zone),
		fmt.Sprintf("Surge multiplier: %.2fx", surge),
	)

	if len(detected) == 0 {
		steps = append(steps, "No contextual overrides detected for this date")
	} else {
		steps = append(steps, fmt.Sprintf("Auto-detected %d override(s):", len(detected)))
		for _, o := range detected {
			arrow := "up"
			if o.Effect == overrides.EffectDiscount {
				arrow = "down"
			}
			steps = append(steps, fmt.Sprintf("  %s x%.2f (%s, %s): %s",
				o.Name, o.Factor, o.Confidence, arrow, o.Reason))
		}
		if capped {
			steps = append(steps, fmt.Sprintf("  Combined override factor capped at x%.2f", overrideFactor))
		}
	}

	steps = append(steps, fmt.Sprintf("Final multiplier: %.2fx (bounds %.2f to %.2f)",
		finalMultiplier, e.minMultiplier, e.maxMultiplier))

	if discount < 1.0 {
		steps = append(steps, fmt.Sprintf("Duration discount (%.3g hrs): %d%% off",
			hours, int((1-discount)*100+0.5)))
	}
	if guarded != effective {
		steps = append(steps, fmt.Sprintf("Rate guard: Rs %.2f/hr clamped to Rs %.2f/hr (floor %.0f, ceiling %.0f)",
			effective, guarded, rate.Floor, rate.Ceiling))
	}

	steps = append(steps, fmt.Sprintf("Effective rate Rs %.2f/hr x %.3g hrs = Rs %.2f",
		guarded, hours, total))
	return steps
}

func dayTypeLabel(dt demand.DayType) string {
	return strings.ReplaceAll(string(dt), "_", " ")
}
