package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingsRepo "tutorbase/database/repository/bookings"
	tutorsRepo "tutorbase/database/repository/tutors"
	"tutorbase/models"
)

// AdminHandler exposes the operator surface: booking traces and tutor
// directory maintenance.
type AdminHandler struct {
	Records bookingsRepo.BookingRecordRepository
	Tutors  tutorsRepo.TutorRepository
}

func NewAdminHandler(records bookingsRepo.BookingRecordRepository, tutors tutorsRepo.TutorRepository) *AdminHandler {
	return &AdminHandler{Records: records, Tutors: tutors}
}

// ListBookingsHandler returns all booking records, newest first.
// Optionally filtered by tutorId.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		records []models.BookingRecord
		err     error
	)
	if tutorID := c.Query("tutorId"); tutorID != "" {
		records, err = h.Records.GetByTutorID(ctx, tutorID)
	} else {
		records, err = h.Records.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to list bookings: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": records, "count": len(records)})
}

// UpsertTutorHandler creates or replaces a tutor profile.
func (h *AdminHandler) UpsertTutorHandler(c *gin.Context) {
	var tutor models.Tutor
	if err := c.ShouldBindJSON(&tutor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if tutor.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.Tutors.Upsert(c.Request.Context(), tutor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to upsert tutor: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": tutor.ID})
}
