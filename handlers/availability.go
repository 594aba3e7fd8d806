package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	tutorsRepo "tutorbase/database/repository/tutors"
	"tutorbase/models"
	"tutorbase/services/booking"
)

// BookingHandler wires the booking orchestration service to HTTP.
type BookingHandler struct {
	Svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// AvailabilityHandler answers GET /api/availability?tutorId=...&sessionLength=...
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	tutorID := c.Query("tutorId")
	if tutorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tutorId is required"})
		return
	}

	sessionMinutes := models.SessionLengthFull
	if raw := c.Query("sessionLength"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionLength must be an integer"})
			return
		}
		sessionMinutes = v
	}
	if sessionMinutes != models.SessionLengthFull && sessionMinutes != models.SessionLengthConsultation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionLength must be 60 or 15"})
		return
	}

	result, err := h.Svc.AvailableSlots(c.Request.Context(), tutorID, sessionMinutes)
	if err != nil {
		if errors.Is(err, tutorsRepo.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tutor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to compute availability: %v", err)})
		return
	}

	c.JSON(http.StatusOK, result)
}
