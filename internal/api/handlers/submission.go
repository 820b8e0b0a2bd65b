package handlers

import (
	"net/http"
	"strconv"

	"cityhunt/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler accepts proof uploads from teams.
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit takes a multipart form with teamId, missionId and a media file.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	teamID, _ := strconv.ParseUint(c.PostForm("teamId"), 10, 32)
	missionID, _ := strconv.ParseUint(c.PostForm("missionId"), 10, 32)
	if teamID == 0 || missionID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teamId and missionId are required"})
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file is unreadable"})
		return
	}
	defer file.Close()

	submissionID, err := h.submissionService.Submit(
		uint(teamID), uint(missionID),
		file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "submissionId": submissionID})
}
