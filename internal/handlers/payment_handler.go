package handlers

import (
	"errors"

	"ridelink/internal/middleware"
	"ridelink/internal/services"
	"ridelink/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// GetRidePaymentInfo returns the payment instructions for a ride the caller
// is a party to.
func (h *PaymentHandler) GetRidePaymentInfo(c *gin.Context) {
	callerID := callerIDOrNil(c)

	info, err := h.payments.GetRidePaymentInfo(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment info retrieved", info)
}

// GetPaymentLink builds a deep link for the requested payment method.
func (h *PaymentHandler) GetPaymentLink(c *gin.Context) {
	callerID := callerIDOrNil(c)

	link, err := h.payments.GeneratePaymentLink(c.Request.Context(), callerID, c.Param("id"), c.Query("method"))
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment link generated", gin.H{
		"payment_link": link,
	})
}

func callerIDOrNil(c *gin.Context) *primitive.ObjectID {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return nil
	}
	return &callerID
}

func respondPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		utils.UnauthorizedResponse(c)
	case errors.Is(err, services.ErrInvalidArgument):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "Ride")
	case errors.Is(err, services.ErrPermissionDenied):
		utils.ForbiddenResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}
