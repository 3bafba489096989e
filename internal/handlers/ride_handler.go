package handlers

import (
	"errors"
	"strconv"
	"time"

	"ridelink/internal/middleware"
	"ridelink/internal/models"
	"ridelink/internal/repositories/mongodb"
	"ridelink/internal/services"
	"ridelink/internal/utils"

	"github.com/gin-gonic/gin"
)

type RideHandler struct {
	rides *services.RideService
}

func NewRideHandler(rides *services.RideService) *RideHandler {
	return &RideHandler{rides: rides}
}

type bookRideRequest struct {
	Pickup        models.Address         `json:"pickup" binding:"required"`
	Dropoff       models.Address         `json:"dropoff" binding:"required"`
	Customer      models.CustomerDetails `json:"customer"`
	IsScheduled   bool                   `json:"is_scheduled"`
	ScheduledTime *time.Time             `json:"scheduled_time"`
	Currency      string                 `json:"currency"`
}

func (h *RideHandler) BookRide(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req bookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid booking payload")
		return
	}

	ride, err := h.rides.BookRide(c.Request.Context(), callerID, &services.BookRideRequest{
		Pickup:        req.Pickup,
		Dropoff:       req.Dropoff,
		Customer:      req.Customer,
		IsScheduled:   req.IsScheduled,
		ScheduledTime: req.ScheduledTime,
		Currency:      req.Currency,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Ride booked", ride)
}

func (h *RideHandler) GetRide(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ride, err := h.rides.GetRide(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondRideError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride retrieved", ride)
}

// ListRides returns the caller's ride history, or a single ride when the
// number query parameter carries an RL- reference.
func (h *RideHandler) ListRides(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if number := c.Query("number"); number != "" {
		ride, err := h.rides.GetRideByNumber(c.Request.Context(), callerID, number)
		if err != nil {
			respondRideError(c, err)
			return
		}

		utils.SuccessResponse(c, "Ride retrieved", ride)
		return
	}

	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	rides, err := h.rides.ListRides(c.Request.Context(), callerID, limit)
	if err != nil {
		respondRideError(c, err)
		return
	}

	utils.SuccessResponse(c, "Rides retrieved", rides)
}

func (h *RideHandler) AcceptRide(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ride, err := h.rides.AcceptRide(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondRideError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride accepted", ride)
}

func (h *RideHandler) CancelRide(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ride, err := h.rides.CancelRide(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondRideError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride cancelled", ride)
}

func (h *RideHandler) CompleteRide(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ride, err := h.rides.CompleteRide(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondRideError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride completed", ride)
}

func respondRideError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, mongodb.ErrRideNotFound):
		utils.NotFoundResponse(c, "Ride")
	case errors.Is(err, services.ErrPermissionDenied):
		utils.ForbiddenResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}
