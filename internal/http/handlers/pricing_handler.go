// README: Pricing handlers for quote calculation and the vehicle listing.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"torq/internal/modules/pricing"
)

type PricingHandler struct {
	engine *pricing.Engine
	cache  *pricing.QuoteCache
}

func NewPricingHandler(engine *pricing.Engine, cache *pricing.QuoteCache) *PricingHandler {
	return &PricingHandler{engine: engine, cache: cache}
}

type priceRequest struct {
	PickupDatetime string  `json:"pickup_datetime"`
	VehicleType    string  `json:"vehicle_type"`
	DurationHours  float64 `json:"duration_hours"`
}

// Timestamps are naive local time; no timezone conversion is performed.
var pickupLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parsePickup(s string) (time.Time, error) {
	var err error
	for _, layout := range pickupLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func (h *PricingHandler) Calculate(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	at, err := parsePickup(req.PickupDatetime)
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"invalid pickup_datetime, use ISO format YYYY-MM-DDTHH:MM:SS")
		return
	}

	key := pricing.QuoteKey(at, pricing.VehicleType(req.VehicleType), req.DurationHours)
	if cached, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.engine.CalculatePrice(at, pricing.VehicleType(req.VehicleType), req.DurationHours)
	if err != nil {
		writePricingError(c, err)
		return
	}
	h.cache.Set(c.Request.Context(), key, result)
	c.JSON(http.StatusOK, result)
}

func (h *PricingHandler) Vehicles(c *gin.Context) {
	rates := h.engine.Rates()
	vehicles := make([]pricing.Rate, 0, len(rates))
	for _, v := range pricing.VehicleTypes {
		if r, ok := rates[v]; ok {
			vehicles = append(vehicles, r)
		}
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
