// README: Pricing types: vehicle classes, rate guards, discount tiers, result.
package pricing

import (
	"torq/internal/modules/demand"
	"torq/internal/modules/overrides"
)

type VehicleType string

const (
	VehicleScooter      VehicleType = "scooter"
	VehicleStandardBike VehicleType = "standard_bike"
	VehiclePremiumBike  VehicleType = "premium_bike"
	VehicleSuperPremium VehicleType = "super_premium"
)

// VehicleTypes lists the known classes in display order.
var VehicleTypes = []VehicleType{
	VehicleScooter,
	VehicleStandardBike,
	VehiclePremiumBike,
	VehicleSuperPremium,
}

// Rate is the per-vehicle price configuration in rupees per hour. Floor
// protects operational cost, ceiling protects the customer; both are applied
// after every multiplier.
type Rate struct {
	Vehicle VehicleType `json:"vehicle_type"`
	Name    string      `json:"name"`
	Base    float64     `json:"base_rate"`
	Floor   float64     `json:"floor_rate"`
	Ceiling float64     `json:"ceiling_rate"`
}

type RateTable map[VehicleType]Rate

func DefaultRates() RateTable {
	return RateTable{
		VehicleScooter:      {VehicleScooter, "Scooter (Activa, Jupiter)", 60, 40, 150},
		VehicleStandardBike: {VehicleStandardBike, "Standard Bike (Pulsar, FZ)", 80, 50, 200},
		VehiclePremiumBike:  {VehiclePremiumBike, "Premium Bike (RE Classic, Dominar)", 150, 100, 375},
		VehicleSuperPremium: {VehicleSuperPremium, "Super Premium (Himalayan, KTM 390)", 250, 160, 625},
	}
}

// Tier is one duration discount step. Tiers are evaluated largest threshold
// first; the first tier the duration satisfies wins.
type Tier struct {
	MinHours float64
	Discount float64
}

func DefaultTiers() []Tier {
	return []Tier{
		{MinHours: 24, Discount: 0.70},
		{MinHours: 8, Discount: 0.80},
		{MinHours: 4, Discount: 0.90},
	}
}

// Result is the complete priced and explained quote. Entirely derived from
// the request; no identity of its own.
type Result struct {
	FinalPrice          float64 `json:"final_price"`
	HourlyRate          float64 `json:"hourly_rate"`
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`

	VehicleType   VehicleType `json:"vehicle_type"`
	VehicleName   string      `json:"vehicle_name"`
	BaseRate      float64     `json:"base_rate"`
	DurationHours float64     `json:"duration_hours"`
	PickupAt      string      `json:"pickup_at"`

	Demand demand.Result `json:"demand"`

	SurgeMultiplier  float64 `json:"surge_multiplier"`
	OverrideFactor   float64 `json:"override_factor"`
	FinalMultiplier  float64 `json:"final_multiplier"`
	DurationDiscount float64 `json:"duration_discount"`

	OverridesDetected []overrides.Override `json:"overrides_detected"`
	OverrideWasCapped bool                 `json:"override_was_capped"`
	Warnings          []string             `json:"warnings"`
	Explanation       []string             `json:"explanation"`
}
