package handlers

import (
	"net/http"

	"cityhunt/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the team<->GM chat and the broadcast channel. The same
// handler backs the team routes and the GM routes; the route decides which
// direction a posted message gets tagged with.
type ChatHandler struct {
	messagingService *service.MessagingService
}

func NewChatHandler(messagingService *service.MessagingService) *ChatHandler {
	return &ChatHandler{messagingService: messagingService}
}

type messageInput struct {
	TeamID uint   `json:"teamId"`
	Text   string `json:"text"`
}

// PostTeamMessage appends a chat line written by the team.
func (h *ChatHandler) PostTeamMessage(c *gin.Context) {
	h.postMessage(c, false)
}

// PostGMMessage appends a chat line written by the GM.
func (h *ChatHandler) PostGMMessage(c *gin.Context) {
	h.postMessage(c, true)
}

func (h *ChatHandler) postMessage(c *gin.Context, fromGM bool) {
	var input messageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teamId and text are required"})
		return
	}

	post := h.messagingService.PostTeamMessage
	if fromGM {
		post = h.messagingService.PostGMMessage
	}

	id, err := post(input.TeamID, input.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// Messages returns a team's chat history, oldest first.
func (h *ChatHandler) Messages(c *gin.Context) {
	messages, err := h.messagingService.Messages(queryTeamID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

type resetChatInput struct {
	TeamID uint `json:"teamId"`
}

// ResetTeamChat wipes one team's chat (GM action).
func (h *ChatHandler) ResetTeamChat(c *gin.Context) {
	var input resetChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teamId is required"})
		return
	}

	if err := h.messagingService.ResetTeamChat(input.TeamID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type broadcastInput struct {
	Text string `json:"text"`
}

// PostBroadcast publishes an announcement to all teams (GM action).
func (h *ChatHandler) PostBroadcast(c *gin.Context) {
	var input broadcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	id, err := h.messagingService.PostBroadcast(input.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// PendingBroadcasts lists the announcements a team has not acknowledged yet.
func (h *ChatHandler) PendingBroadcasts(c *gin.Context) {
	broadcasts, err := h.messagingService.PendingBroadcasts(queryTeamID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, broadcasts)
}

type ackInput struct {
	TeamID      uint `json:"teamId"`
	BroadcastID uint `json:"broadcastId"`
}

// AckBroadcast marks one broadcast as seen by one team.
func (h *ChatHandler) AckBroadcast(c *gin.Context) {
	var input ackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teamId and broadcastId are required"})
		return
	}

	if err := h.messagingService.AckBroadcast(input.TeamID, input.BroadcastID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
