// README: One-shot quote CLI: prints a full price breakdown for a booking.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"torq/internal/config"
	"torq/internal/modules/calendar"
	"torq/internal/modules/demand"
	"torq/internal/modules/overrides"
	"torq/internal/modules/pricing"
)

func main() {
	at := flag.String("at", "", "pickup datetime, e.g. 2025-10-18T09:00")
	vehicle := flag.String("vehicle", "standard_bike", "vehicle type")
	hours := flag.Float64("hours", 8, "rental duration in hours")
	flag.Parse()

	if *at == "" {
		fmt.Fprintln(os.Stderr, "usage: quote -at 2025-10-18T09:00 [-vehicle standard_bike] [-hours 8]")
		os.Exit(2)
	}
	pickup, err := time.ParseInLocation("2006-01-02T15:04", *at, time.Local)
	if err != nil {
		if pickup, err = time.ParseInLocation("2006-01-02T15:04:05", *at, time.Local); err != nil {
			log.Fatalf("bad -at value: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	profile := demand.Load(cfg.Profiles.Path)
	cal := calendar.Default()
	model := demand.NewModel(profile, cal, demand.Weights{
		DayType:  cfg.Pricing.WeightDayType,
		Season:   cfg.Pricing.WeightSeason,
		TimeSlot: cfg.Pricing.WeightTimeSlot,
	})
	detector := overrides.NewDetector(profile, cal, overrides.DefaultFactors(), cfg.Pricing.MaxOverrideFactor)
	engine := pricing.NewEngine(model, detector, pricing.Options{
		MinMultiplier:     cfg.Pricing.MinMultiplier,
		MaxMultiplier:     cfg.Pricing.MaxMultiplier,
		LowConfidenceDays: cfg.Pricing.LowConfidenceDays,
	})

	result, err := engine.CalculatePrice(pickup, pricing.VehicleType(*vehicle), *hours)
	if err != nil {
		log.Fatal(err)
	}

	for _, step := range result.Explanation {
		fmt.Println(step)
	}
	for _, w := range result.Warnings {
		fmt.Println("note:", w)
	}
	fmt.Printf("total: Rs %.2f\n", result.FinalPrice)
}
