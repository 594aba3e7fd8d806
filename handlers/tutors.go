package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	tutorsRepo "tutorbase/database/repository/tutors"
	"tutorbase/models"
)

// TutorHandler serves the public tutor directory.
type TutorHandler struct {
	Repo tutorsRepo.TutorRepository
}

func NewTutorHandler(repo tutorsRepo.TutorRepository) *TutorHandler {
	return &TutorHandler{Repo: repo}
}

// ListTutorsHandler returns the active tutors with only public fields.
// Calendar IDs and base rates never leave the server.
func (h *TutorHandler) ListTutorsHandler(c *gin.Context) {
	tutors, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to list tutors: %v", err)})
		return
	}

	public := make([]models.TutorPublic, 0, len(tutors))
	for _, t := range tutors {
		public = append(public, t.Public())
	}

	c.JSON(http.StatusOK, gin.H{"tutors": public})
}
