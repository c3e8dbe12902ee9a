// Package http provides the HTTP handler layer for the cargo pricing API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all cargo pricing API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *PricingHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Records group
	records := api.Group("/records")
	records.POST("", h.UploadRecords)
	records.GET("/:id/pricing", h.GetRecordPricing)
	records.POST("/:id/convert", h.ConvertRecord)

	// Pricing group
	pricing := api.Group("/pricing")
	pricing.POST("/recompute", h.Recompute)

	// Routes group
	routes := api.Group("/routes")
	routes.GET("/alternatives", h.Alternatives)

	// Rates group (registry reads plus transit pricing)
	rates := api.Group("/rates")
	rates.GET("", h.ListRates)
	rates.GET("/transit/:id/options", h.TransitOptions)
	rates.GET("/transit/:id/variants", h.TransitVariants)
	rates.POST("/transit/:id/select", h.SelectTransit)

	// Registry reads
	api.GET("/airports", h.ListAirports)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *PricingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	records := api.Group("/records")
	records.POST("", h.UploadRecords)
	records.GET("/:id/pricing", h.GetRecordPricing)
	records.POST("/:id/convert", h.ConvertRecord)

	pricing := api.Group("/pricing")
	pricing.POST("/recompute", h.Recompute)

	routes := api.Group("/routes")
	routes.GET("/alternatives", h.Alternatives)

	rates := api.Group("/rates")
	rates.GET("", h.ListRates)
	rates.GET("/transit/:id/options", h.TransitOptions)
	rates.GET("/transit/:id/variants", h.TransitVariants)
	rates.POST("/transit/:id/select", h.SelectTransit)

	api.GET("/airports", h.ListAirports)
}
