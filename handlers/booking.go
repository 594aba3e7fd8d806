package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	tutorsRepo "tutorbase/database/repository/tutors"
	"tutorbase/models"
	"tutorbase/services/booking"
	"tutorbase/services/scheduling"
)

// CreateBookingHandler commits a booking against an offered slot. The
// slot is re-validated against a fresh calendar snapshot under a
// per-tutor lock; a stale offer comes back as 409.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var commitErr *scheduling.CommitError
		switch {
		case errors.Is(err, tutorsRepo.ErrTutorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tutor not found"})
		case errors.Is(err, booking.ErrInvalidSessionLength):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &commitErr):
			c.JSON(http.StatusConflict, gin.H{"error": commitErr.Message, "code": commitErr.Code})
		case errors.Is(err, booking.ErrCommitContended):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("booking failed: %v", err)})
		}
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

// QuoteHandler prices a prospective slot without committing anything.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var input struct {
		TutorID      string `json:"tutorId" binding:"required"`
		StartTimeISO string `json:"startTimeISO" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, input.StartTimeISO)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTimeISO must be RFC3339"})
		return
	}

	quote, err := h.Svc.Quote(c.Request.Context(), input.TutorID, start)
	if err != nil {
		if errors.Is(err, tutorsRepo.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tutor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to compute quote: %v", err)})
		return
	}

	c.JSON(http.StatusOK, quote)
}
