// README: Demand profile tables: JSON loading, validation, and built-in fallback.
package demand

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// neutralScore is returned for any missing table key.
const neutralScore = 0.5

// Profile holds the five lookup tables produced by the offline aggregation
// job. Keys are strings because that is how the job serializes them
// (month "10", hour "9"). Values are scores or probabilities in [0, 1].
// Immutable after load; safe for concurrent readers.
type Profile struct {
	DayType        map[string]float64            `json:"day_type"`
	DayOfWeek      map[string]float64            `json:"day_of_week"`
	Monthly        map[string]float64            `json:"monthly"`
	Hourly         map[string]float64            `json:"hourly"`
	WeatherByMonth map[string]map[string]float64 `json:"weather_by_month"`
}

func (p *Profile) DayTypeScore(dt DayType) float64 {
	if s, ok := p.DayType[string(dt)]; ok {
		return s
	}
	return neutralScore
}

func (p *Profile) MonthScore(m time.Month) float64 {
	if s, ok := p.Monthly[strconv.Itoa(int(m))]; ok {
		return s
	}
	return neutralScore
}

func (p *Profile) HourScore(hour int) float64 {
	if s, ok := p.Hourly[strconv.Itoa(hour)]; ok {
		return s
	}
	return neutralScore
}

// WeatherProbs returns the historical weather-condition probabilities for a
// month. Probabilities need not sum to 1: categories can overlap.
func (p *Profile) WeatherProbs(m time.Month) map[string]float64 {
	return p.WeatherByMonth[strconv.Itoa(int(m))]
}

// Validate checks the table invariants: every value in [0, 1] and a day_type
// entry for each of the 9 canonical labels.
func (p *Profile) Validate() error {
	for _, dt := range DayTypes {
		if _, ok := p.DayType[string(dt)]; !ok {
			return fmt.Errorf("day_type table missing %q", dt)
		}
	}
	for name, table := range map[string]map[string]float64{
		"day_type":    p.DayType,
		"day_of_week": p.DayOfWeek,
		"monthly":     p.Monthly,
		"hourly":      p.Hourly,
	} {
		for k, v := range table {
			if v < 0 || v > 1 {
				return fmt.Errorf("%s[%s] = %v out of [0, 1]", name, k, v)
			}
		}
	}
	for month, probs := range p.WeatherByMonth {
		for cond, v := range probs {
			if v < 0 || v > 1 {
				return fmt.Errorf("weather_by_month[%s][%s] = %v out of [0, 1]", month, cond, v)
			}
		}
	}
	return nil
}

// Load reads a profile JSON file. It never fails: an absent or malformed
// profile degrades to the built-in fallback so a bad table can not stop
// pricing.
func Load(path string) *Profile {
	p, err := LoadFile(path)
	if err != nil {
		log.Printf("demand: using fallback profile: %v", err)
		return Fallback()
	}
	return p
}

func LoadFile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return &p, nil
}

// Fallback returns the built-in rule-based profile used when no data-derived
// profile is available. It satisfies the same invariants as a loaded one.
func Fallback() *Profile {
	return &Profile{
		DayType: map[string]float64{
			"long_weekend":    1.00,
			"holiday":         0.90,
			"bridge_strong":   0.85,
			"holiday_eve":     0.70,
			"saturday":        0.80,
			"sunday":          0.65,
			"friday":          0.55,
			"bridge_weak":     0.45,
			"regular_weekday": 0.35,
		},
		DayOfWeek: map[string]float64{
			"0": 0.45, "1": 0.40, "2": 0.40, "3": 0.45, "4": 0.60,
			"5": 0.95, "6": 0.80,
		},
		Monthly: map[string]float64{
			"1": 0.55, "2": 0.50, "3": 0.70, "4": 0.65, "5": 1.00, "6": 0.40,
			"7": 0.25, "8": 0.30, "9": 0.35, "10": 0.88, "11": 0.85, "12": 0.60,
		},
		Hourly: map[string]float64{
			"0": 0.02, "1": 0.01, "2": 0.01, "3": 0.01, "4": 0.02, "5": 0.05,
			"6": 0.15, "7": 0.70, "8": 0.95, "9": 1.00, "10": 0.65, "11": 0.50,
			"12": 0.40, "13": 0.35, "14": 0.35, "15": 0.40, "16": 0.50, "17": 0.45,
			"18": 0.35, "19": 0.25, "20": 0.15, "21": 0.08, "22": 0.05, "23": 0.02,
		},
		// Approximate Indian climate: monsoon rain Jun-Sep, heat Apr-Jun.
		WeatherByMonth: map[string]map[string]float64{
			"1":  {"rain": 0.02, "hot": 0.00},
			"2":  {"rain": 0.02, "hot": 0.02},
			"3":  {"rain": 0.04, "hot": 0.10},
			"4":  {"rain": 0.05, "hot": 0.35},
			"5":  {"rain": 0.08, "hot": 0.45},
			"6":  {"rain": 0.30, "heavy_rain": 0.12, "hot": 0.25},
			"7":  {"rain": 0.35, "heavy_rain": 0.20, "hot": 0.02},
			"8":  {"rain": 0.32, "heavy_rain": 0.18, "hot": 0.02},
			"9":  {"rain": 0.25, "heavy_rain": 0.08, "hot": 0.05},
			"10": {"rain": 0.08, "hot": 0.05},
			"11": {"rain": 0.03, "hot": 0.00},
			"12": {"rain": 0.02, "hot": 0.00},
		},
	}
}
