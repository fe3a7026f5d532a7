// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torq/internal/http/handlers"
	"torq/internal/http/middleware"
	"torq/internal/modules/pricing"
)

func NewRouter(engine *pricing.Engine, cache *pricing.QuoteCache) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	pricingHandler := handlers.NewPricingHandler(engine, cache)
	r.POST("/api/price", pricingHandler.Calculate)
	r.GET("/api/vehicles", pricingHandler.Vehicles)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
