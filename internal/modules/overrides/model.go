// README: Contextual override types and their multiplicative factors.
package overrides

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Effect string

const (
	EffectSurge    Effect = "surge"
	EffectDiscount Effect = "discount"
)

// Override is one detected contextual price adjustment. Factor is always
// positive; above 1 surges, below 1 discounts.
type Override struct {
	Name       string     `json:"name"`
	Factor     float64    `json:"factor"`
	Reason     string     `json:"reason"`
	Confidence Confidence `json:"confidence"`
	Effect     Effect     `json:"effect"`
}

// Factors names every override multiplier so operators can retune without a
// code change.
type Factors struct {
	LongWeekend   float64
	Festival      float64
	Holiday       float64
	HolidayEve    float64
	FridayEvening float64

	RainLikely      float64
	HeavyRainLikely float64
	HeatwaveLikely  float64
}

func DefaultFactors() Factors {
	return Factors{
		LongWeekend:     1.50,
		Festival:        1.40,
		Holiday:         1.30,
		HolidayEve:      1.15,
		FridayEvening:   1.20,
		RainLikely:      0.85,
		HeavyRainLikely: 0.70,
		HeatwaveLikely:  0.90,
	}
}

// Thresholds for the weather rules, as shares of historical bookings in the
// month that saw each condition.
const (
	heavyRainThreshold = 0.15
	rainThreshold      = 0.25
	heatThreshold      = 0.20
)

// Hour of day from which the Friday evening pickup surge applies.
const fridayEveningHour = 17
