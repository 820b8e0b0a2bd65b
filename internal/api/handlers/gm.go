package handlers

import (
	"net/http"
	"strconv"

	"cityhunt/internal/service"

	"github.com/gin-gonic/gin"
)

// GMHandler covers the GM console: teams, scores, submission review, timer
// control and the round reset.
type GMHandler struct {
	roundService      *service.RoundService
	submissionService *service.SubmissionService
	scoreService      *service.ScoreService
}

func NewGMHandler(roundService *service.RoundService, submissionService *service.SubmissionService, scoreService *service.ScoreService) *GMHandler {
	return &GMHandler{
		roundService:      roundService,
		submissionService: submissionService,
		scoreService:      scoreService,
	}
}

// Teams lists all registered teams.
func (h *GMHandler) Teams(c *gin.Context) {
	teams, err := h.roundService.Teams()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// Scores returns the leaderboard.
func (h *GMHandler) Scores(c *gin.Context) {
	scores, err := h.scoreService.Scores()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scores)
}

// Submissions lists every submission with team and mission details.
func (h *GMHandler) Submissions(c *gin.Context) {
	submissions, err := h.submissionService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

type reviewInput struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// ReviewSubmission sets the review decision for one submission.
func (h *GMHandler) ReviewSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := h.submissionService.Review(uint(id), input.Status, input.Comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type startTimerInput struct {
	DurationMinutes int `json:"durationMinutes"`
}

// StartTimer arms the countdown; without a body the configured default
// round length applies.
func (h *GMHandler) StartTimer(c *gin.Context) {
	var input startTimerInput
	// The body is optional; a bare POST starts the default round.
	_ = c.ShouldBindJSON(&input)

	if err := h.roundService.StartTimer(input.DurationMinutes); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// StopTimer clears the countdown.
func (h *GMHandler) StopTimer(c *gin.Context) {
	if err := h.roundService.StopTimer(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ResetRound wipes all round data and stored artifacts.
func (h *GMHandler) ResetRound(c *gin.Context) {
	if err := h.roundService.ResetRound(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
