package handlers

import (
	"strconv"

	"ridelink/internal/models"
	"ridelink/internal/services"
	"ridelink/internal/utils"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	routes  *services.RouteService
	pricing *services.PricingService
	area    *services.AreaService
}

func NewEstimateHandler(routes *services.RouteService, pricing *services.PricingService, area *services.AreaService) *EstimateHandler {
	return &EstimateHandler{
		routes:  routes,
		pricing: pricing,
		area:    area,
	}
}

type estimateRequest struct {
	Pickup  models.Coordinate `json:"pickup" binding:"required"`
	Dropoff models.Coordinate `json:"dropoff" binding:"required"`
}

type estimateResponse struct {
	Price *models.PriceEstimate `json:"price"`
	Route *models.RouteEstimate `json:"route"`
}

// GetEstimate prices a pickup/dropoff pair. The route estimator's fallback
// guarantees this endpoint succeeds even when the routing API is down.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "pickup and dropoff coordinates are required")
		return
	}

	for _, coord := range []models.Coordinate{req.Pickup, req.Dropoff} {
		if !utils.IsValidCoordinates(coord.Latitude, coord.Longitude) {
			utils.BadRequestResponse(c, "coordinates out of range")
			return
		}
	}

	route := h.routes.Estimate(c.Request.Context(), req.Pickup, req.Dropoff)
	price := h.pricing.PriceFromRoute(route)

	utils.SuccessResponse(c, "Estimate calculated", estimateResponse{
		Price: price,
		Route: route,
	})
}

// CheckServiceArea answers whether a coordinate falls inside the boundary.
func (h *EstimateHandler) CheckServiceArea(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.BadRequestResponse(c, "lat and lng query parameters are required")
		return
	}

	if !utils.IsValidCoordinates(lat, lng) {
		utils.BadRequestResponse(c, "coordinates out of range")
		return
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lng}

	utils.SuccessResponse(c, "Service area checked", gin.H{
		"inside": h.area.Contains(coord),
		"center": h.area.Center(),
	})
}
