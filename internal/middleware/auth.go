package middleware

import (
	"net/http"

	"cityhunt/internal/service"

	"github.com/gin-gonic/gin"
)

// GMTokenHeader is the header GM clients send on every privileged request.
const GMTokenHeader = "x-gm-token"

// GMAuth rejects requests without a valid GM token before any handler runs.
func GMAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(GMTokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "GM unauthorized"})
			c.Abort()
			return
		}

		if err := auth.ValidateToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "GM unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
