package handlers

import (
	"net/http"

	"cityhunt/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler covers the public team-facing endpoints: joining, the mission
// catalog, the countdown and per-mission progress.
type TeamHandler struct {
	roundService      *service.RoundService
	submissionService *service.SubmissionService
}

func NewTeamHandler(roundService *service.RoundService, submissionService *service.SubmissionService) *TeamHandler {
	return &TeamHandler{
		roundService:      roundService,
		submissionService: submissionService,
	}
}

type joinInput struct {
	TeamName string `json:"teamName"`
}

// Join registers (or re-joins) a team by name.
func (h *TeamHandler) Join(c *gin.Context) {
	var input joinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teamName is required"})
		return
	}

	teamID, err := h.roundService.Join(input.TeamName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teamId": teamID})
}

// Missions returns the full catalog ordered by number.
func (h *TeamHandler) Missions(c *gin.Context) {
	missions, err := h.submissionService.Missions()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, missions)
}

// Timer reports the shared countdown.
func (h *TeamHandler) Timer(c *gin.Context) {
	status, err := h.roundService.TimerStatus()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// MissionStatus reports the latest submission status per mission for a team.
func (h *TeamHandler) MissionStatus(c *gin.Context) {
	statuses, err := h.submissionService.MissionStatus(queryTeamID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}
