package routes

import (
	"ridelink/internal/handlers"
	"ridelink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupEstimateRoutes sets up the public pricing and service-area routes
func SetupEstimateRoutes(r *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := r.Group("/estimates")
	{
		estimates.POST("", estimateHandler.GetEstimate)
	}

	r.GET("/service-area/check", estimateHandler.CheckServiceArea)
}

// SetupBookingProgressRoutes sets up the booking progress save/restore routes
func SetupBookingProgressRoutes(r *gin.RouterGroup, progressHandler *handlers.BookingProgressHandler) {
	progress := r.Group("/booking-progress")
	{
		progress.PUT("", progressHandler.Save)
		progress.GET("", progressHandler.Restore)
		progress.DELETE("", progressHandler.Clear)
	}
}

// SetupRideRoutes sets up the authenticated ride and payment routes
func SetupRideRoutes(r *gin.RouterGroup, jwtSecret string, rideHandler *handlers.RideHandler, paymentHandler *handlers.PaymentHandler) {
	rides := r.Group("/rides")
	rides.Use(middleware.AuthRequired(jwtSecret))
	{
		rides.POST("", rideHandler.BookRide)
		rides.GET("", rideHandler.ListRides)
		rides.GET("/:id", rideHandler.GetRide)
		rides.POST("/:id/accept", rideHandler.AcceptRide)
		rides.POST("/:id/cancel", rideHandler.CancelRide)
		rides.POST("/:id/complete", rideHandler.CompleteRide)
		rides.GET("/:id/payment-info", paymentHandler.GetRidePaymentInfo)
		rides.GET("/:id/payment-link", paymentHandler.GetPaymentLink)
	}
}
