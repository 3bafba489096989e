package handlers

import (
	"ridelink/internal/models"
	"ridelink/internal/services"
	"ridelink/internal/utils"

	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Session-ID"

type BookingProgressHandler struct {
	progress *services.BookingProgressService
}

func NewBookingProgressHandler(progress *services.BookingProgressService) *BookingProgressHandler {
	return &BookingProgressHandler{progress: progress}
}

// Save overwrites the session's in-flight booking state.
func (h *BookingProgressHandler) Save(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		utils.BadRequestResponse(c, "X-Session-ID header is required")
		return
	}

	var snapshot models.BookingProgressSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		utils.BadRequestResponse(c, "invalid booking progress payload")
		return
	}

	if !h.progress.Save(sessionID, snapshot) {
		utils.BadRequestResponse(c, "nothing to save: snapshot has no pickup, destination or price")
		return
	}

	utils.SuccessResponse(c, "Booking progress saved", nil)
}

// Restore returns the session's saved state when present and fresh. The
// suppress_autosave flag tells the client not to re-save while applying the
// restored state.
func (h *BookingProgressHandler) Restore(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		utils.BadRequestResponse(c, "X-Session-ID header is required")
		return
	}

	snapshot, ok := h.progress.Restore(sessionID)
	if !ok {
		utils.NotFoundResponse(c, "Booking progress")
		return
	}

	utils.SuccessResponse(c, "Booking progress restored", gin.H{
		"snapshot":          snapshot,
		"suppress_autosave": true,
	})
}

// Clear empties the session's slot.
func (h *BookingProgressHandler) Clear(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		utils.BadRequestResponse(c, "X-Session-ID header is required")
		return
	}

	h.progress.Clear(sessionID)
	utils.NoContentResponse(c)
}
