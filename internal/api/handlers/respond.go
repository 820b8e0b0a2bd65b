package handlers

import (
	"net/http"
	"strconv"

	"cityhunt/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError maps service error kinds onto HTTP statuses. Storage failures
// are logged in full and reported without internals.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case service.IsAuth(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// queryTeamID reads the teamId query parameter; zero means absent or bad.
func queryTeamID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Query("teamId"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
