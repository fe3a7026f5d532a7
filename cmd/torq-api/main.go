// README: Entry point; loads config and data, wires the engine, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"torq/internal/config"
	httptransport "torq/internal/http"
	"torq/internal/infra"
	"torq/internal/modules/calendar"
	"torq/internal/modules/demand"
	"torq/internal/modules/overrides"
	"torq/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres is optional: without it the service runs on the profile file
	// or the built-in defaults. A bad table must never stop pricing.
	profile := demand.Load(cfg.Profiles.Path)
	cal := calendar.Default()
	rates := pricing.DefaultRates()

	if cfg.DB.DSN != "" {
		if pool, err := infra.NewDB(ctx, cfg.DB.DSN); err != nil {
			log.Printf("db unavailable, using local data: %v", err)
		} else {
			defer pool.Close()
			if p, err := demand.NewStore(pool).Load(ctx); err != nil {
				log.Printf("db profile load failed, using local profile: %v", err)
			} else {
				profile = p
			}
			if c, err := calendar.NewStore(pool).Load(ctx); err != nil {
				log.Printf("db calendar load failed, using built-in calendar: %v", err)
			} else {
				cal = c
			}
			if r, err := pricing.NewStore(pool).LoadRates(ctx); err != nil {
				log.Printf("db rate load failed, using default rates: %v", err)
			} else {
				rates = r
			}
		}
	}

	model := demand.NewModel(profile, cal, demand.Weights{
		DayType:  cfg.Pricing.WeightDayType,
		Season:   cfg.Pricing.WeightSeason,
		TimeSlot: cfg.Pricing.WeightTimeSlot,
	})
	detector := overrides.NewDetector(profile, cal, overrides.DefaultFactors(), cfg.Pricing.MaxOverrideFactor)
	engine := pricing.NewEngine(model, detector, pricing.Options{
		Rates:             rates,
		MinMultiplier:     cfg.Pricing.MinMultiplier,
		MaxMultiplier:     cfg.Pricing.MaxMultiplier,
		LowConfidenceDays: cfg.Pricing.LowConfidenceDays,
	})

	var cache *pricing.QuoteCache
	if cfg.Redis.Addr != "" {
		cache = pricing.NewQuoteCache(infra.NewRedis(cfg.Redis.Addr), cfg.Redis.QuoteTTL)
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(engine, cache),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
